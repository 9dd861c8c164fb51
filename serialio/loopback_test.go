package serialio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullyy9/gallivant/serialio"
)

func TestLoopbackPortReadTimeoutWhenEmpty(t *testing.T) {
	port := serialio.NewLoopbackPort()
	buf := make([]byte, 16)
	n, err := port.Read(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, serialio.ErrTimeout)
}

func TestLoopbackPortEchoesQueuedResponse(t *testing.T) {
	port := serialio.NewLoopbackPort()
	n, err := port.Write([]byte("O04\r"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, [][]byte{[]byte("O04\r")}, port.Written)

	port.QueueResponse([]byte("O04\r"))
	buf := make([]byte, 16)
	n, err = port.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "O04\r", string(buf[:n]))

	_, err = port.Read(buf)
	assert.ErrorIs(t, err, serialio.ErrTimeout)
}

func TestLoopbackPortRespondHook(t *testing.T) {
	port := serialio.NewLoopbackPort()
	port.Respond = func(written []byte) []byte {
		return append(append([]byte(nil), written...), []byte("2721\r")...)
	}

	_, err := port.Write([]byte("M03\r"))
	require.NoError(t, err)

	buf := make([]byte, 64)
	n, err := port.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "M03\r2721\r", string(buf[:n]))
}
