package tui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleemora/survivors/internal/pagination"
	"github.com/gleemora/survivors/internal/survivor"
)

func testPage(n, page, size int) PageView {
	return PageView{
		Records:   testRecords(n),
		State:     pagination.State{Page: page, PageSize: size},
		Formatter: survivor.Formatter{Location: time.UTC},
	}
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, testPage(7, 1, 5)))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "Name"))
	assert.Contains(t, lines[0], "Joined at")
	assert.Contains(t, out, "Survivor 6")
	assert.Contains(t, out, "Survivor 7")
	assert.NotContains(t, out, "Survivor 5 ")
	assert.Equal(t, "Rows per page: 5  6–7 of 7  Page 2/2", lines[len(lines)-1])
}

func TestRenderPlain_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, testPage(0, 0, 10)))

	assert.Contains(t, buf.String(), "Rows per page: 10  0–0 of 0  Page 1/1")
}

func TestRenderPlain_FlattensMultilineCells(t *testing.T) {
	p := testPage(1, 0, 5)
	p.Records[0].StoryOfResilience = "line one\nline two"

	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, p))
	assert.Contains(t, buf.String(), "line one line two")
}

func TestRenderStyled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderStyled(&buf, testPage(3, 0, 5)))

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Survivor 3")
	assert.Contains(t, out, "Rows per page: 5  1–3 of 3  Page 1/1")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, testPage(7, 0, 5)))

	var got struct {
		Data       []survivor.Record `json:"data"`
		Pagination pagination.Meta   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Len(t, got.Data, 5)
	assert.Equal(t, pagination.Meta{
		Page:       0,
		PageSize:   5,
		TotalPages: 2,
		TotalItems: 7,
		From:       1,
		To:         5,
		HasNext:    true,
	}, got.Pagination)
}

func TestRenderJSON_PastEnd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, testPage(3, 4, 5)))
	assert.Contains(t, buf.String(), `"data": []`)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
}

func TestDetectOutputMode(t *testing.T) {
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false, true))
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, false, true), "plain wins over force color")
	assert.Equal(t, OutputModeStyled, DetectOutputMode(true, false, false))
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, true, false))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false, false))
}

func TestRenderSurvivorDetail(t *testing.T) {
	rec := testRecords(1)[0]
	out := RenderSurvivorDetail(rec, survivor.Formatter{Location: time.UTC}, 100)

	for _, title := range survivor.ColumnTitles() {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "s1@example.com")
	assert.Contains(t, out, "Monday 04, March, 2024")
}
