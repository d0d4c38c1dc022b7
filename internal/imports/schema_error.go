package imports

import (
	"fmt"
	"strings"
)

// SchemaError: Yüklenen dosyada zorunlu kolonların eksik olması.
// Hiçbir kayıt işlenmeden, mutasyon yapılmadan döner.
type SchemaError struct {
	Kind    string   // "stock" | "menu" | "sales" | "orders"
	Missing []string // eksik kolon adları
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s dosyasında zorunlu kolonlar eksik: %s", e.Kind, strings.Join(e.Missing, ", "))
}
