package audit

import "fmt"

// LoginEvent represents a login attempt
type LoginEvent struct {
	Username     string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully logged in", e.Username)
	}
	msg := fmt.Sprintf("%s failed to log in", e.Username)
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
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// RegisterEvent represents a user registration
type RegisterEvent struct {
	Username string
	Role     string
	ClientIP string
}

func (e RegisterEvent) MessageID() string {
	return "register"
}

func (e RegisterEvent) Message() string {
	return fmt.Sprintf("user %s registered with role %s", e.Username, e.Role)
}

func (e RegisterEvent) Severity() Severity {
	return SeverityInfo
}

func (e RegisterEvent) Facility() int {
	return FacilityAuth
}

func (e RegisterEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"user": e.Username,
			"role": e.Role,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// RequestEvent represents an access request submission
type RequestEvent struct {
	Username     string
	ClientIP     string
	SoftwareName string
	AccessType   string
	Success      bool
	ErrorMessage string
}

func (e RequestEvent) MessageID() string {
	return "request"
}

func (e RequestEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s requested %s access to %s", e.Username, e.AccessType, e.SoftwareName)
	}
	msg := fmt.Sprintf("%s failed to request %s access to %s", e.Username, e.AccessType, e.SoftwareName)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RequestEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RequestEvent) Facility() int {
	return FacilityAuth
}

func (e RequestEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"software":    e.SoftwareName,
			"access_type": e.AccessType,
		},
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// DecisionEvent represents an approval or rejection of an access request
type DecisionEvent struct {
	Approver  string
	ClientIP  string
	RequestID uint
	Status    string
}

func (e DecisionEvent) MessageID() string {
	return "decision"
}

func (e DecisionEvent) Message() string {
	return fmt.Sprintf("%s marked request %d as %s", e.Approver, e.RequestID, e.Status)
}

func (e DecisionEvent) Severity() Severity {
	return SeverityNotice
}

func (e DecisionEvent) Facility() int {
	return FacilityAuth
}

func (e DecisionEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAction: {
			"request": fmt.Sprintf("%d", e.RequestID),
			"status":  e.Status,
		},
		SDIDAuth: {
			"user": e.Approver,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// CatalogEvent represents a catalog create or update
type CatalogEvent struct {
	Username     string
	ClientIP     string
	SoftwareName string
	Action       string // "create" or "update"
}

func (e CatalogEvent) MessageID() string {
	return "catalog"
}

func (e CatalogEvent) Message() string {
	return fmt.Sprintf("%s performed catalog %s on %s", e.Username, e.Action, e.SoftwareName)
}

func (e CatalogEvent) Severity() Severity {
	return SeverityInfo
}

func (e CatalogEvent) Facility() int {
	return FacilityAuth
}

func (e CatalogEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAction: {
			"software": e.SoftwareName,
			"action":   e.Action,
		},
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}
