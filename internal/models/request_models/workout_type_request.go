package request_models

type CreateWorkoutTypeRequest struct {
	Name  string `json:"name" binding:"required"`
	Emoji string `json:"emoji" binding:"required"`
}

type EditWorkoutTypeRequest struct {
	NewName  *string `json:"newName"`
	NewEmoji *string `json:"newEmoji"`
}
