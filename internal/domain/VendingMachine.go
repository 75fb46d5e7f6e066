package domain

// VendingMachine representa um aparelho da frota, criado a partir da listagem
// da API upstream e válido pela duração de um relatório.
type VendingMachine struct {
	ID   int
	Name string
}
