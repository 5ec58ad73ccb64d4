package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type InternalConfig struct {
	App      App
	Pharmacy Pharmacy
	JWT      JWT
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	MaxTimeRequestsPerSeconds      int
	RequestBodyLimitInMegabyte     int
	LoginSessionExpiredTimeInHours int
	OrderDraftExpiredTimeInHours   int
	MedicineCacheTTLInMinutes      int
	LoginAttemptsPerMinute         int
}

// Pharmacy holds the connection details for the upstream pharmacy backend
// the portal delegates all durable state to.
type Pharmacy struct {
	BaseUrl          string
	APIKey           string
	TimeoutInSeconds int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                      string
	PublicUrl                       string
	ProfilePictureMaxUploadSizeInMB int
}

type AppRabbitMQ struct {
	OrderQueue    string
	ReminderQueue string
}
