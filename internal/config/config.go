package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	AppEnv            string
	RazorpayKeyID     string
	RazorpayKeySecret string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}

	// The key secret never leaves the server; clients only ever see the key id.
	if cfg.RazorpayKeySecret == "" {
		log.Fatal("RAZORPAY_KEY_SECRET must be set")
	}

	return cfg
}
