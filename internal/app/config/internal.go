package config

type InternalConfig struct {
	App            App
	Slot           AppSlot
	BookingRecords AppBookingRecords
	JWT            AppJWT
	Cache          AppCache
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

type AppSlot struct {
	// Template is the ordered list of bookable time labels for a day.
	Template []string
	// ExcludeStatuses names appointment statuses that do not occupy a slot.
	ExcludeStatuses []string
	WindowDays      int
}

type AppBookingRecords struct {
	BaseUrl              string
	TimeoutInSeconds     int
	MaxRequestsPerSecond int
}

type AppJWT struct {
	Secret string
}

type AppCache struct {
	ServiceCatalogTTLInSeconds int
}
