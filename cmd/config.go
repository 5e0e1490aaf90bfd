package cmd

// Config carries everything the process reads from the environment.
// Kafka settings are optional; with an empty host order events are not
// published.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	JWTSecret            string
	JWTTTLHours          int
	LowStockThreshold    int
	KafkaHost            string
	KafkaOrderEventTopic string
}
