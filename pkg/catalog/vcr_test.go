package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjfontaine/bdfd-catalog/internal/testutil"
)

// These tests replay cassettes recorded against the public catalog.
// Run with VCR_MODE=record to refresh them.

func TestFunctionClient_Info_Recorded(t *testing.T) {
	recorder := testutil.NewVCRRecorder(t, "function_info")
	client := NewFunctionClient(WithHTTPClient(testutil.VCRHTTPClient(recorder)))

	fn, err := client.Info(context.Background(), "addButton")
	require.NoError(t, err)

	assert.Equal(t, "$addButton", fn.Tag)
	assert.Equal(t, "Adds a button to the response message", fn.Description)
	assert.Equal(t, IntentsNone, fn.Intents)
	assert.False(t, fn.Premium)
	require.Len(t, fn.Args, 7)
	assert.Equal(t, "New row", fn.Args[0].Name)
	assert.Equal(t, ArgBool, fn.Args[0].Type)

	style := fn.Args[2]
	assert.Equal(t, ArgEnum, style.Type)
	require.NotNil(t, style.EnumData)
	assert.Equal(t, EnumAddButton, style.EnumData.Kind)
}

func TestCallbackClient_List_Recorded(t *testing.T) {
	recorder := testutil.NewVCRRecorder(t, "callback_list")
	client := NewCallbackClient(WithHTTPClient(testutil.VCRHTTPClient(recorder)))

	list, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "$alwaysReply", list[0].Name)
	assert.Equal(t, IntentsNone, list[0].Intents)

	assert.Equal(t, "$onJoined", list[1].Name)
	assert.Equal(t, IntentsMembers, list[1].Intents)
	require.Len(t, list[1].Args, 1)
	assert.Equal(t, ArgSnowflake, list[1].Args[0].Type)

	assert.Equal(t, "$onLeave", list[2].Name)
	assert.Empty(t, list[2].Args)
}
