package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	t.Run("carries correlation fields", func(t *testing.T) {
		hook.Reset()
		ctx := NewContext(context.Background(), map[string]interface{}{"request_id": "req-1"})
		ctx = NewContext(ctx, map[string]interface{}{"principal_id": "p-1"})

		WithContext(ctx).Info("hello")

		require.Len(t, hook.Entries, 1)
		entry := hook.LastEntry()
		assert.Equal(t, "req-1", entry.Data["request_id"])
		assert.Equal(t, "p-1", entry.Data["principal_id"])
		assert.Equal(t, logrus.InfoLevel, entry.Level)
	})

	t.Run("later fields override earlier ones", func(t *testing.T) {
		ctx := NewContext(context.Background(), map[string]interface{}{"request_id": "a"})
		ctx = NewContext(ctx, map[string]interface{}{"request_id": "b"})

		assert.Equal(t, "b", FieldsFromContext(ctx)["request_id"])
	})

	t.Run("plain context has no fields", func(t *testing.T) {
		hook.Reset()
		WithContext(context.Background()).WithField("op", "test").Warn("plain")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "test", entry.Data["op"])
		assert.NotContains(t, entry.Data, "request_id")
	})
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
