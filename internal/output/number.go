package output

import "fmt"

// NumberItem is a commit id looked up by the number command.
type NumberItem struct {
	Query  string `json:"query"`
	ID     string `json:"sha"`
	Number int    `json:"number"`
	Alias  int    `json:"alias"`
}

// WriteNumbers prints one revision number per line, or a JSON array.
func WriteNumbers(items []NumberItem, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if options.Format == FormatJSON {
		if items == nil {
			items = []NumberItem{}
		}
		return encodeJSON(out, items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(out, item.Number); err != nil {
			return err
		}
	}
	return nil
}
