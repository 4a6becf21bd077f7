package xlsxgrid

import "fmt"

// OutputError reports a failure to serialize the workbook, typically because
// the target file is open in another program or the directory is not
// writable. Path is empty when the target was an io.Writer.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("writing workbook: %v", e.Err)
	}
	return fmt.Sprintf("writing workbook %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
