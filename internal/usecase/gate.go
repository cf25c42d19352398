package usecase

import "cv-amplify/internal/domain"

// GateDecision is what the studio view does for a session.
type GateDecision int

const (
	// GateRender shows the studio.
	GateRender GateDecision = iota
	// GateWait shows a loading placeholder until the session resolves.
	GateWait
	// GateRedirect sends the visitor to sign-in and renders nothing else.
	GateRedirect
)

func (d GateDecision) String() string {
	switch d {
	case GateRender:
		return "render"
	case GateWait:
		return "wait"
	case GateRedirect:
		return "redirect"
	}
	return "unknown"
}

// Gate decides how the studio view treats a session. With authentication
// disabled the studio always renders (demo mode).
func Gate(s domain.Session) GateDecision {
	switch {
	case !s.AuthEnabled:
		return GateRender
	case s.Loading:
		return GateWait
	case s.User == nil:
		return GateRedirect
	}
	return GateRender
}

// DemoBanner is shown whenever authentication is disabled.
const DemoBanner = "You are running in demo mode. Set JWT_SECRET to enable authentication and membership features."

func ShowDemoBanner(s domain.Session) bool {
	return !s.AuthEnabled
}

// CanSignOut reports whether the sign-out action is offered.
func CanSignOut(s domain.Session) bool {
	return s.AuthEnabled && s.User != nil
}

// AccountLabel is the badge text in the studio header.
func AccountLabel(s domain.Session) string {
	if !s.AuthEnabled {
		return "Demo mode • Authentication disabled"
	}
	if s.User != nil {
		return s.User.Email
	}
	return ""
}
