package domain

import "time"

// Identity is an authenticated principal as reported by an identity
// provider. Optional fields are nil when the provider did not supply them.
type Identity struct {
	ID          string
	Provider    string
	DisplayName *string
	Email       *string
	AvatarURL   *string
}

// Profile is the user document persisted in the document store, keyed by ID.
// CreatedAt is set once when the document is first written.
type Profile struct {
	ID        string    `json:"id"        bson:"_id"       firestore:"id"`
	Name      string    `json:"name"      bson:"name"      firestore:"name"`
	Email     string    `json:"email"     bson:"email"     firestore:"email"`
	AvatarURL string    `json:"avatarUrl" bson:"avatarUrl" firestore:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" firestore:"createdAt"`
}

// NewProfile builds the document that would be created for identity,
// substituting empty strings for absent optional fields.
func NewProfile(identity Identity, now time.Time) Profile {
	return Profile{
		ID:        identity.ID,
		Name:      derefOrEmpty(identity.DisplayName),
		Email:     derefOrEmpty(identity.Email),
		AvatarURL: derefOrEmpty(identity.AvatarURL),
		CreatedAt: now,
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
