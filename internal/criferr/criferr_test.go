package criferr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"прямой отказ", New(KindCommunication, "boom"), KindCommunication},
		{"обёрнутый в fmt.Errorf", fmt.Errorf("call: %w", New(KindValidation, "bad")), KindValidation},
		{"двойная обёртка", Wrap(KindProtocol, "parse", New(KindCommunication, "inner")), KindProtocol},
		{"чужая ошибка", errors.New("plain"), 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindCommunication, "call bureau endpoint", cause)

	assert.Equal(t, "communication: call bureau endpoint: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestValidationCarriesField(t *testing.T) {
	err := Validation("contract_type", "contract type is required")

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "contract_type", err.Field)
	assert.Equal(t, "validation: contract type is required", err.Error())
}
