package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_IS_ADMIN_KEY             ContextKey = "is_admin"
)

const (
	REQUEST_ID_PREFIX = "BCLNC_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ResourceSlots        = "slots"
	ResourceAppointments = "appointments"
	ResourceServices     = "services"
	ResourceHealth       = "health"
)

// Mongo collections
const (
	MongoCollectionSlots = "slots"
)

// Redis keys
const (
	RedisKeyServiceCatalog = "bclnc:services:list"
)

// ISO calendar date used for slot keys and appointment dates.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DefaultSlotTemplate is used when SLOT_TEMPLATE is not configured.
var DefaultSlotTemplate = []string{
	"09:00", "10:00", "11:00",
	"12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00",
}

const (
	DefaultSlotWindowDays = 3
)

const (
	AppointmentStatusPending = "Pending"
)
