package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWidgetsSeedsDefaults(t *testing.T) {
	setupTest(t)

	widgetService := WidgetService{}

	widgets, err := widgetService.GetWidgets(1, 1)
	require.NoError(t, err)
	require.Len(t, widgets, len(defaultWidgets))
	for i, w := range widgets {
		assert.Equal(t, defaultWidgets[i].Type, w.Type)
		assert.Equal(t, i, w.SortOrder)
	}
}

func TestReorderWidgets(t *testing.T) {
	setupTest(t)

	widgetService := WidgetService{}

	widgets, err := widgetService.GetWidgets(1, 1)
	require.NoError(t, err)
	require.True(t, len(widgets) >= 2)

	reversed := make([]string, 0, len(widgets))
	for i := len(widgets) - 1; i >= 0; i-- {
		reversed = append(reversed, widgets[i].Type)
	}
	require.NoError(t, widgetService.Reorder(1, 1, reversed))

	got, err := widgetService.GetWidgets(1, 1)
	require.NoError(t, err)
	for i, w := range got {
		assert.Equal(t, reversed[i], w.Type)
	}
}

func TestWidgetsAreScopedPerUser(t *testing.T) {
	setupTest(t)

	widgetService := WidgetService{}

	// First read seeds the user's default tiles.
	_, err := widgetService.GetWidgets(1, 1)
	require.NoError(t, err)

	disabled := false
	_, err = widgetService.UpdateWidget(1, 1, &WidgetForm{
		Type:    defaultWidgets[0].Type,
		Enabled: &disabled,
	})
	require.NoError(t, err)

	// A different user still sees the widget enabled.
	other, err := widgetService.GetWidgets(1, 2)
	require.NoError(t, err)
	assert.True(t, other[0].Enabled)

	mine, err := widgetService.GetWidgets(1, 1)
	require.NoError(t, err)
	assert.False(t, mine[0].Enabled)
}

func TestResetWidgets(t *testing.T) {
	setupTest(t)

	widgetService := WidgetService{}

	_, err := widgetService.GetWidgets(1, 1)
	require.NoError(t, err)

	disabled := false
	_, err = widgetService.UpdateWidget(1, 1, &WidgetForm{
		Type:    defaultWidgets[0].Type,
		Enabled: &disabled,
	})
	require.NoError(t, err)

	require.NoError(t, widgetService.ResetWidgets(1, 1))

	widgets, err := widgetService.GetWidgets(1, 1)
	require.NoError(t, err)
	assert.True(t, widgets[0].Enabled)
}

func TestWidgetAcceptsFullSize(t *testing.T) {
	setupTest(t)

	widgetService := WidgetService{}

	_, err := widgetService.GetWidgets(1, 1)
	require.NoError(t, err)

	widget, err := widgetService.UpdateWidget(1, 1, &WidgetForm{
		Type: defaultWidgets[0].Type,
		Size: "full",
	})
	require.NoError(t, err)
	assert.Equal(t, "full", widget.Size)
}
