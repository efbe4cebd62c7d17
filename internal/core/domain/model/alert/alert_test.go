package alert_test

import (
	"testing"

	"coldstore/internal/core/domain/model/alert"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureAlert(t *testing.T) {
	a := alert.NewTemperatureAlert("temperatures > 5 °C: inbound 1 · salmon crate (BOX-20260901-001) · 7 °C")

	require.NoError(t, a.Validate())
	assert.Equal(t, alert.TemperatureAlertID, a.ID())
	assert.Equal(t, "High temperature", a.Title())
	assert.False(t, a.IsFailureReport())

	_, ok := a.OverdueOrderID()
	assert.False(t, ok)

	b := alert.NewTemperatureAlert("different cause set")
	assert.Equal(t, a.ID(), b.ID(), "temperature alert id is content-independent")
}

func TestOverdueOrderAlert(t *testing.T) {
	orderID := kernel.NewUUID()
	a := alert.NewOverdueOrderAlert(orderID, "order pending for more than 2 minutes: inbound 1 -> storage 3")

	assert.Equal(t, alert.OrderAlertID(orderID), a.ID())
	assert.Equal(t, "Overdue task", a.Title())

	extracted, ok := a.OverdueOrderID()
	require.True(t, ok)
	assert.True(t, extracted.IsEqual(orderID))
}

func TestFailureReportAlert(t *testing.T) {
	a := alert.NewFailureReportAlert(kernel.NewUUID(), "inbound 1 -> storage 3 · reported by Operator")

	assert.True(t, a.IsFailureReport())
	assert.Equal(t, "Failure report", a.Title())

	_, ok := a.OverdueOrderID()
	assert.False(t, ok)
}

func TestAlert_WithReason(t *testing.T) {
	a := alert.NewTemperatureAlert("cause")

	annotated, err := a.WithReason(alert.ReasonNoTime)
	require.NoError(t, err)
	require.NotNil(t, annotated.Reason())
	assert.Equal(t, alert.ReasonNoTime, *annotated.Reason())
	assert.Nil(t, a.Reason(), "original is unchanged")

	_, err = a.WithReason(alert.Reason("whatever"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAlert_WithDescription(t *testing.T) {
	a := alert.NewTemperatureAlert("old cause set")
	annotated, err := a.WithReason(alert.ReasonCouldNot)
	require.NoError(t, err)

	updated := annotated.WithDescription("new cause set")
	assert.Equal(t, "new cause set", updated.Description())
	assert.Equal(t, annotated.ID(), updated.ID())
	require.NotNil(t, updated.Reason(), "annotation survives description update")
}

func TestAlert_ZeroValueFailsValidation(t *testing.T) {
	var a alert.Alert
	require.ErrorIs(t, a.Validate(), alert.ErrAlertIsNotConstructed)
}
