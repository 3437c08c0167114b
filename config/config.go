package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type ObjectStorageConfig struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	Folder        string
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort         string
	MetricsPort         string
	MongoDBConfig       MongoDBConfig
	KafkaConfig         KafkaConfig
	ObjectStorageConfig ObjectStorageConfig
	TracingConfig       TracingConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		ObjectStorageConfig: ObjectStorageConfig{
			Endpoint:      os.Getenv("OBJECT_STORAGE_ENDPOINT"),
			Region:        os.Getenv("OBJECT_STORAGE_REGION"),
			Bucket:        os.Getenv("OBJECT_STORAGE_BUCKET"),
			AccessKey:     os.Getenv("OBJECT_STORAGE_ACCESS_KEY"),
			SecretKey:     os.Getenv("OBJECT_STORAGE_SECRET_KEY"),
			PublicBaseURL: os.Getenv("OBJECT_STORAGE_PUBLIC_BASE_URL"),
			Folder:        os.Getenv("OBJECT_STORAGE_FOLDER"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.ServicePort == "" {
		conf.ServicePort = "5000"
	}

	if conf.ObjectStorageConfig.Folder == "" {
		conf.ObjectStorageConfig.Folder = "products"
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	return &conf
}
