package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Pricing
	BaseFare  string
	PerKmRate string

	// Dispatch
	BroadcastRadiusKm   string
	BroadcastStaleAfter string

	// Default delivery target applied when provisioning drivers.
	DailyDeliveryTarget string
}
