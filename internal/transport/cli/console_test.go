package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_Plain(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := NewConsole(&out)

	c.Success("палка")
	c.Error(`Word "нет" not found`)
	c.Info("Results for \"час\": час")

	assert.Equal(t,
		"Word \"палка\" processed successfully\n"+
			"[Error] Word \"нет\" not found\n"+
			"Results for \"час\": час\n",
		out.String())
}

func TestConsole_Colored(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := &Console{out: &out, color: true}

	c.Success("палка")
	c.Error("boom")

	assert.Equal(t,
		"Word \"палка\" processed \x1b[32msuccessfully\x1b[0m\n"+
			"[\x1b[31mError\x1b[0m] boom\n",
		out.String())
}
