package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	POS  POSConfig
	JWT  JWTConfig
	HTTP HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// POSConfig configuración del backend Mini-POS al que se consulta.
type POSConfig struct {
	BaseURL string // URL base del backend; se normaliza para terminar en /api
	Token   string // token de servicio opcional; los handlers reenvían el Bearer del caller
	Timeout int    // segundos por request saliente
}

// JWTConfig configuración de validación de tokens emitidos por el backend POS.
type JWTConfig struct {
	Secret string
	Issuer string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NormalizeAPIURL deja la URL base del backend terminando en un único "/api":
// quita slashes finales, quita "/api" si ya lo trae y lo vuelve a añadir.
func NormalizeAPIURL(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "http://localhost:8000/api"
	}
	v = strings.TrimRight(v, "/")
	if strings.HasSuffix(strings.ToLower(v), "/api") {
		v = v[:len(v)-len("/api")]
	}
	return v + "/api"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, POS_API_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "mini-pos-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		POS: POSConfig{
			BaseURL: NormalizeAPIURL(getString(v, "POS_API_URL", "")),
			Token:   getString(v, "POS_API_TOKEN", ""),
			Timeout: getInt(v, "POS_API_TIMEOUT_SECONDS", 15),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "mini-pos"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
