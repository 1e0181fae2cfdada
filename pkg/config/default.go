package config

type Redis struct {
	Address string `koanf:"address"`
}

type AWS struct {
	Region    string `koanf:"region"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
}

type Cache struct {
	TTLSeconds int `koanf:"ttl_seconds"`
}

// Config is the runtime configuration of the tool, read from the
// environment on top of Default.
type Config struct {
	Redis   Redis `koanf:"redis"`
	AWS     AWS   `koanf:"aws"`
	Cache   Cache `koanf:"cache"`
	Workers int   `koanf:"workers"`
}

var Default = Config{
	Cache:   Cache{TTLSeconds: 3600},
	Workers: 4,
}
