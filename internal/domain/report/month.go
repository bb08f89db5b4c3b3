// Package report agrupa y concilia los relatórios diarios para la vista por mes
// y para el relatório de comercialização DIPOVA. Todo es puro: sin I/O ni reloj.
package report

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NotAvailable marcador usado cuando un dato no se puede resolver.
const NotAvailable = "N/A"

// Abreviaturas pt-BR en orden; el índice es el mes - 1.
var monthAbbrev = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

var (
	isoDatePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:[T\s].*)?$`)
	brDate        = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	looseISODate  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
)

// calendar fecha civil sin hora ni zona.
type calendar struct {
	year, month, day int
}

func (c calendar) valid() bool {
	if c.month < 1 || c.month > 12 || c.day < 1 {
		return false
	}
	t := time.Date(c.year, time.Month(c.month), c.day, 0, 0, 0, 0, time.UTC)
	return t.Day() == c.day
}

// parseCalendar interpreta s como fecha civil. Orden:
//  1. YYYY-MM-DD[T...] estricto (sin conversión de zona)
//  2. RFC 3339 / RFC 3339 nano
//  3. DD/MM/YYYY
//  4. prefijo YYYY-MM-DD
func parseCalendar(s string) (calendar, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return calendar{}, false
	}
	if m := isoDatePrefix.FindStringSubmatch(s); m != nil {
		if c := atoiCalendar(m[1], m[2], m[3]); c.valid() {
			return c, true
		}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return calendar{t.Year(), int(t.Month()), t.Day()}, true
		}
	}
	if m := brDate.FindStringSubmatch(s); m != nil {
		if c := atoiCalendar(m[3], m[2], m[1]); c.valid() {
			return c, true
		}
	}
	if m := looseISODate.FindStringSubmatch(s); m != nil {
		if c := atoiCalendar(m[1], m[2], m[3]); c.valid() {
			return c, true
		}
	}
	return calendar{}, false
}

func atoiCalendar(y, m, d string) calendar {
	yy, _ := strconv.Atoi(y)
	mm, _ := strconv.Atoi(m)
	dd, _ := strconv.Atoi(d)
	return calendar{yy, mm, dd}
}

// MonthKey deriva la etiqueta "Mon-YYYY" (ej. "Fev-2025") de un timestamp en texto.
// Fechas que no se pueden interpretar caen en "N/A".
func MonthKey(s string) string {
	c, ok := parseCalendar(s)
	if !ok {
		return NotAvailable
	}
	return monthAbbrev[c.month-1] + "-" + strconv.Itoa(c.year)
}

// MonthKeyOf etiqueta de mes para un time.Time, usando su propia zona.
func MonthKeyOf(t time.Time) string {
	return monthAbbrev[t.Month()-1] + "-" + strconv.Itoa(t.Year())
}

// ParseMonthKey devuelve (año, mes 1..12). La abreviatura se compara sin distinguir mayúsculas.
func ParseMonthKey(key string) (year, month int, ok bool) {
	mon, yr, found := strings.Cut(key, "-")
	if !found {
		return 0, 0, false
	}
	y, err := strconv.Atoi(yr)
	if err != nil {
		return 0, 0, false
	}
	for i, abbrev := range monthAbbrev {
		if strings.EqualFold(abbrev, mon) {
			return y, i + 1, true
		}
	}
	return 0, 0, false
}

// SortMonthKeys ordena de más reciente a más antiguo; claves inválidas ("N/A") al final.
func SortMonthKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		yi, mi, oki := ParseMonthKey(keys[i])
		yj, mj, okj := ParseMonthKey(keys[j])
		switch {
		case oki && !okj:
			return true
		case !oki:
			return false
		}
		return yi*100+mi > yj*100+mj
	})
}

// FormatDate formatea una fecha civil como DD/MM/YYYY; "N/A" si no se puede interpretar.
func FormatDate(s string) string {
	c, ok := parseCalendar(s)
	if !ok {
		return NotAvailable
	}
	return pad2(c.day) + "/" + pad2(c.month) + "/" + strconv.Itoa(c.year)
}

// DayMonth recorta DD/MM/YYYY a DD/MM para la tabla en pantalla.
func DayMonth(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) >= 2 {
		return parts[0] + "/" + parts[1]
	}
	return s
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
