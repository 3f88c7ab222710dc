package economy

type CreateEconomyRequest struct {
	Name       string  `json:"name" binding:"required"`
	StartValue float64 `json:"start_value"`
}
