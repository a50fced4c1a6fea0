package redis_client

import (
	"context"
	"strconv"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/traxovo/traxovo/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

func Connect() error {
	address := util.GetEnvironmentVariable("REDIS_ADDRESS", defaultConnectionAddress)
	password := util.GetEnvironmentVariable("REDIS_PASSWORD", defaultConnectionPassword)
	database := defaultDatabase

	if value := util.GetEnvironmentVariable("REDIS_DATABASE", ""); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		database = n
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	return backoff.Retry(func() error {
		return Client.Ping(context.Background()).Err()
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
}
