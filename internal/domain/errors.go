package domain

import (
	"errors"
	"fmt"
)

// UpstreamError indica falha na API upstream (rede, autenticação ou payload
// malformado). Não é retentado pelo core; propaga até o chamador.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("falha upstream em %s", e.Op)
	}
	return fmt.Sprintf("falha upstream em %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func NewUpstreamError(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

func IsUpstreamError(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

// ConfigurationError indica parâmetro de detecção ausente ou inválido. É
// levantado antes de qualquer chamada de rede.
type ConfigurationError struct {
	Param  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuração inválida (%s): %s", e.Param, e.Reason)
}

func NewConfigurationError(param, reason string) error {
	return &ConfigurationError{Param: param, Reason: reason}
}

func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// DeliveryError indica falha no envio da notificação depois que o relatório já
// foi montado. O texto do relatório não se perde, apenas não foi entregue.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("falha na entrega da notificação: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func NewDeliveryError(err error) error {
	return &DeliveryError{Err: err}
}

func IsDeliveryError(err error) bool {
	var target *DeliveryError
	return errors.As(err, &target)
}
