package usecasecontract

import "time"

// IConfigProvider exposes the settings use cases depend on.
type IConfigProvider interface {
	GetJWTExpiry() time.Duration
	GetCookieExpiry() time.Duration
	GetDoctorCacheTTL() time.Duration
}
