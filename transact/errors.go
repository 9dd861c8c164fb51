package transact

import "fmt"

func errEchoMismatch(want, got []byte) error {
	return fmt.Errorf("command echo incorrect: sent %q, device echoed %q", want, got)
}

func errMeasurementParse(text string) error {
	return fmt.Errorf("could not parse measurement %q as a hexadecimal number", text)
}
