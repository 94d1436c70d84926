package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for ports.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	ClientOrigin string // the single browser origin allowed by CORS
	SMTPHost     string // outbound mail server host
	SMTPPort     int    // outbound mail server port
	SMTPUser     string // mail account username (optional)
	SMTPPass     string // mail account password (optional)
	MailFrom     string // fixed sender identity on confirmation mails
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),           // environment (dev/test/prod)
		Port:         must("APP_PORT"),          // port to bind the HTTP server
		DBUser:       must("DB_USER"),           // database user
		DBPass:       os.Getenv("DB_PASS"),      // database password (empty allowed)
		DBHost:       must("DB_HOST"),           // database host
		DBPort:       must("DB_PORT"),           // database port
		DBName:       must("DB_NAME"),           // database name
		ClientOrigin: must("CLIENT_ORIGIN"),     // e.g. http://localhost:4000
		SMTPHost:     must("SMTP_HOST"),         // mail server host
		SMTPPort:     mustInt("SMTP_PORT"),      // mail server port
		SMTPUser:     os.Getenv("SMTP_USER"),    // mail username (empty allowed)
		SMTPPass:     os.Getenv("SMTP_PASS"),    // mail password (empty allowed)
		MailFrom:     must("MAIL_FROM"),         // confirmation sender address
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
