package kernel_test

import (
	"encoding/json"
	"testing"

	"governance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid unique UUID", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.NotEqual(t, uuid.Nil.String(), id1.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should accept canonical and alternative forms", func(t *testing.T) {
		for _, input := range []string{
			validUUID,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, input)
			assert.Equal(t, validUUID, id.String())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716"} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject nil UUID bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	require.NoError(t, kernel.MustUUIDFromString(validUUID).Validate())
}

func TestUUID_JSON(t *testing.T) {
	type payload struct {
		CustomerID *kernel.UUID `json:"customerId,omitempty"`
	}

	t.Run("should decode and encode as string", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"customerId":"`+validUUID+`"}`), &p))
		require.NotNil(t, p.CustomerID)
		assert.Equal(t, validUUID, p.CustomerID.String())

		out, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"customerId":"`+validUUID+`"}`, string(out))
	})

	t.Run("should leave absent field nil", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.Nil(t, p.CustomerID)
	})

	t.Run("should reject nil and malformed identifiers", func(t *testing.T) {
		var p payload
		require.Error(t, json.Unmarshal([]byte(`{"customerId":"00000000-0000-0000-0000-000000000000"}`), &p))
		require.Error(t, json.Unmarshal([]byte(`{"customerId":"abc"}`), &p))
	})
}
