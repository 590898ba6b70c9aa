package shared

type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type AuthSession interface {
	GetUserID() string
}

type session struct {
	userID string
}

func (s session) GetUserID() string {
	return s.userID
}

func NewSession(userID string) AuthSession {
	return session{userID: userID}
}

// NoSession is set for requests without a valid identity.
var NoSession AuthSession = session{}
