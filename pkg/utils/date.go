package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate parsea una fecha YYYY-MM-DD; cadena vacía devuelve la fecha cero.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate formatea una fecha como YYYY-MM-DD, el formato usado en los
// registros de historial y en movimientos.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
