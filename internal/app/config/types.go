package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Postgres Postgres
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Postgres struct {
		Host     string
		Port     string
		DBName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		UseSSL     bool
		BucketName string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App            App
	DB             DB
	JWT            JWT
	Fee            Fee
	PaymentGateway PaymentGateway
	WhatsApp       WhatsApp
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Timezone                 string
	EndpointPrefix           string
	BaseDomain               string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	RequestTimeoutInSeconds  int
}

type DB struct {
	// Driver selects the storage backend: "mongo" or "postgres".
	Driver string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Fee struct {
	PlatformPercent float64
}

type PaymentGateway struct {
	BaseUrl                 string
	KeyID                   string
	KeySecret               string
	RequestTimeoutInSeconds int
	// AllowMockOrder permits synthesizing a placeholder order when the
	// gateway is unreachable. Must stay off in live-money deployments.
	AllowMockOrder bool
}

type WhatsApp struct {
	Queue                   string
	Fast2SMSBaseUrl         string
	Fast2SMSApiKey          string
	Fast2SMSSenderID        string
	SendsPerSecond          float64
	RequestTimeoutInSeconds int
}
