package config

type (
	InternalConfig struct {
		App            App
		PaymentGateway PaymentGateway
		Exchange       Exchange
		JWT            JWT
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		RabbitMQ   RabbitMQ
		Logger     Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		BookingHoldTimeInMinutes   int
		SweeperCronSpec            string
		CheckoutReturnURL          string
		BookingEventsQueue         string
		DefaultClientTimezone      string
	}

	PostgresDB struct {
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

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	PaymentGateway struct {
		BaseUrl          string
		PublicKey        string
		PrivateKey       string
		TimeoutInSeconds int
	}

	Exchange struct {
		BaseUrl               string
		TimeoutInSeconds      int
		ReferenceRateTTLHours int
	}

	JWT struct {
		Secret string
	}
)
