package domain

import "time"

// Sale representa uma venda registrada por um aparelho. O timestamp já está
// normalizado para o fuso horário do projeto quando o registro sai do
// repositório de vendas.
type Sale struct {
	VendingMachineID int
	Amount           float64
	Timestamp        time.Time
}
