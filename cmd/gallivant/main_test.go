package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/request"
	"github.com/sullyy9/gallivant/serialio"
	"github.com/sullyy9/gallivant/transact"
)

func TestParseMeasurements(t *testing.T) {
	out, err := parseMeasurements(map[string]string{"4": "2721", "5": "100"})
	require.NoError(t, err)
	assert.Equal(t, map[byte]uint32{4: 2721, 5: 100}, out)
}

func TestParseMeasurementsRejectsInvalidChannel(t *testing.T) {
	_, err := parseMeasurements(map[string]string{"not-a-number": "1"})
	assert.Error(t, err)
}

func TestHostHandleNoneAndWaitAreNoOps(t *testing.T) {
	h := &host{}
	assert.NoError(t, h.handle(request.None{}))
	assert.NoError(t, h.handle(request.Wait{Duration: 0}))
}

func TestHostHandleDrivesTCUTransactAgainstFixture(t *testing.T) {
	port := serialio.NewFixturePort(map[byte]uint32{3: 2721})
	h := &host{tcuPort: port}

	test := &transact.MeasurementTest{
		Min: ast.FromUintDefault(1000), Max: ast.FromUintDefault(5000), Retries: 0, Message: "FAIL",
	}
	tx := transact.NewTCU(ast.FromStringDefault("TCUTEST"), []byte("M03\r"), test)

	err := h.handle(request.TCUTransact{Tx: tx})
	require.NoError(t, err)
}

func TestHostHandleDrivesFireAndForgetPrinterTransact(t *testing.T) {
	port := serialio.NewFixturePort(nil)
	h := &host{printerPort: port}

	tx := transact.NewPrinter(ast.FromStringDefault("USBPRINT"), []byte{0x1B, 'P'}, nil)

	err := h.handle(request.PrinterTransact{Tx: tx})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0x1B, 'P'}}, port.Written)
}
