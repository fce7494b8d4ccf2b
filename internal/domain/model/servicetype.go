package model

// ServiceType is one entry of the backend's service enumeration.
// The backoffice never hard-codes the label set; it is configured from
// the backend (or a local file) at startup.
type ServiceType struct {
	ID    int64
	Label string
}
