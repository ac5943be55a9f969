package audit

import "fmt"

// RegistrationEvent represents a registration audit event
type RegistrationEvent struct {
	Email        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e RegistrationEvent) MessageID() string {
	return "register"
}

func (e RegistrationEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s registered", e.Email)
	}
	msg := fmt.Sprintf("%s failed to register", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RegistrationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityNotice
}

func (e RegistrationEvent) Facility() int {
	return FacilityAuth
}

func (e RegistrationEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"email": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// LoginEvent represents an authentication audit event
type LoginEvent struct {
	Email        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", e.Email)
	}
	msg := fmt.Sprintf("%s failed to authenticate", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"email": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// DeletionEvent represents a submission deletion audit event
type DeletionEvent struct {
	UserID   string
	ClientIP string
	Deleted  bool
}

func (e DeletionEvent) MessageID() string {
	return "delete"
}

func (e DeletionEvent) Message() string {
	if e.Deleted {
		return fmt.Sprintf("submission %s deleted", e.UserID)
	}
	return fmt.Sprintf("submission %s not found for deletion", e.UserID)
}

func (e DeletionEvent) Severity() Severity {
	return SeverityInfo
}

func (e DeletionEvent) Facility() int {
	return FacilityAuth
}

func (e DeletionEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAction: {
			"operation": "delete",
			"deleted":   fmt.Sprintf("%t", e.Deleted),
		},
		SDIDSubject: {
			"id": e.UserID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// SweepEvent represents a retention sweep audit event
type SweepEvent struct {
	Removed      int64
	Success      bool
	ErrorMessage string
}

func (e SweepEvent) MessageID() string {
	return "sweep"
}

func (e SweepEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("retention sweep removed %d records", e.Removed)
	}
	return "retention sweep failed: " + e.ErrorMessage
}

func (e SweepEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityError
}

func (e SweepEvent) Facility() int {
	return FacilityDaemon
}

func (e SweepEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAction: {
			"operation": "sweep",
			"removed":   fmt.Sprintf("%d", e.Removed),
		},
	}
}
