package audit

import "fmt"

// LoginEvent records an authentication attempt against /authn/login
type LoginEvent struct {
	Login        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully logged in", e.Login)
	}
	msg := fmt.Sprintf("%s failed to log in", e.Login)
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
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"login": e.Login,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "login",
			"result":    result,
		},
	}
}

// MutationEvent records a write to portfolio content: create, update or
// delete of a project, skill, experience, or the profile.
type MutationEvent struct {
	Username     string
	ClientIP     string
	Resource     string // "project", "skill", "experience", "profile"
	ResourceID   string
	Operation    string // "create", "update", "delete"
	Success      bool
	ErrorMessage string
}

func (e MutationEvent) MessageID() string {
	return "mutation"
}

func (e MutationEvent) Message() string {
	subject := e.Resource
	if e.ResourceID != "" {
		subject = fmt.Sprintf("%s %s", e.Resource, e.ResourceID)
	}
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s", e.Username, e.Operation, subject)
	}
	msg := fmt.Sprintf("%s tried to %s %s", e.Username, e.Operation, subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MutationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e MutationEvent) Facility() int {
	return FacilityAuth
}

func (e MutationEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDSubject: {
			"resource": e.Resource,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
	if e.ResourceID != "" {
		sd[SDIDSubject]["id"] = e.ResourceID
	}
	return sd
}

// PasswordChangeEvent records an admin password reset
type PasswordChangeEvent struct {
	Username     string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e PasswordChangeEvent) MessageID() string {
	return "password"
}

func (e PasswordChangeEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("password changed for %s", e.Username)
	}
	msg := fmt.Sprintf("password change failed for %s", e.Username)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e PasswordChangeEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e PasswordChangeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PasswordChangeEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "change-password",
			"result":    result,
		},
	}
}
