package dto

type SubjectItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
}

type CreateSubjectRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Color string `json:"color" binding:"required,hexcolor"`
}
