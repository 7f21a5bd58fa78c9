package request

type CreatePetRequest struct {
	Name string `json:"name" binding:"required,max=80"`
	Type string `json:"type" binding:"required,max=20"`
	Age  int32  `json:"age" binding:"min=0"`
}
