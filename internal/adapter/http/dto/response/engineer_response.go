package response

import (
	"time"

	"installworks/internal/domain/entities"
)

type ChecklistItemResponse struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Done     bool   `json:"done"`
}

// ChecklistResponse carries the items plus the recomputed aggregate flag;
// completion is never stored, only derived from the items returned here.
type ChecklistResponse struct {
	OrderID  string                  `json:"order_id"`
	Items    []ChecklistItemResponse `json:"items"`
	Complete bool                    `json:"complete"`
}

func FromChecklist(orderID string, items []entities.ChecklistItem, complete bool) ChecklistResponse {
	out := make([]ChecklistItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ChecklistItemResponse{
			Position: it.Position,
			Name:     it.Name,
			Done:     it.Done,
		})
	}
	return ChecklistResponse{OrderID: orderID, Items: out, Complete: complete}
}

type EngineerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

func FromEngineer(e entities.Engineer) EngineerResponse {
	return EngineerResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Available: e.Available,
		CreatedAt: e.CreatedAt,
	}
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
