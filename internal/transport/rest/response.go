package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type creditResponse struct {
	ID            string    `json:"id"`
	Owner         string    `json:"owner"`
	Score         int64     `json:"score"`
	CreditedUsers []string  `json:"creditedUsers"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type cooldownResponse struct {
	ID          string    `json:"id"`
	FreetID     string    `json:"freetId"`
	Provocative bool      `json:"provocative"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type scheduledResponse struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Content     string    `json:"content"`
	PublishDate time.Time `json:"publishDate"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type freetResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type reflectionResponse struct {
	ID        string    `json:"id"`
	FreetID   string    `json:"freetId"`
	Owner     string    `json:"owner"`
	Content   string    `json:"content"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID.String(), Username: u.Username, CreatedAt: u.CreatedAt}
}

func toCreditResponse(c *domain.CreditRecord) creditResponse {
	return creditResponse{
		ID:            c.ID.String(),
		Owner:         c.Owner.String(),
		Score:         c.Score,
		CreditedUsers: uuidStrings(c.CreditedUsers),
		UpdatedAt:     c.UpdatedAt,
	}
}

func toCooldownResponse(c *domain.CooldownRecord) cooldownResponse {
	return cooldownResponse{
		ID:          c.ID.String(),
		FreetID:     c.FreetID.String(),
		Provocative: c.Provocative,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toScheduledResponse(s *domain.ScheduledItem) scheduledResponse {
	return scheduledResponse{
		ID:          s.ID.String(),
		Owner:       s.Owner.String(),
		Content:     s.Content,
		PublishDate: s.PublishAt,
		State:       s.State().String(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toScheduledResponses(items []domain.ScheduledItem) []scheduledResponse {
	out := make([]scheduledResponse, len(items))
	for i := range items {
		out[i] = toScheduledResponse(&items[i])
	}
	return out
}

func toFreetResponse(f *domain.Freet) freetResponse {
	return freetResponse{
		ID:        f.ID.String(),
		AuthorID:  f.AuthorID.String(),
		Content:   f.Content,
		CreatedAt: f.CreatedAt,
	}
}

func toFreetResponses(freets []domain.Freet) []freetResponse {
	out := make([]freetResponse, len(freets))
	for i := range freets {
		out[i] = toFreetResponse(&freets[i])
	}
	return out
}

func toReflectionResponse(r *domain.Reflection) reflectionResponse {
	return reflectionResponse{
		ID:        r.ID.String(),
		FreetID:   r.FreetID.String(),
		Owner:     r.Owner.String(),
		Content:   r.Content,
		Public:    r.Public,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toReflectionResponses(refs []domain.Reflection) []reflectionResponse {
	out := make([]reflectionResponse, len(refs))
	for i := range refs {
		out[i] = toReflectionResponse(&refs[i])
	}
	return out
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
