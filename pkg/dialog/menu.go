package dialog

import (
	"fmt"
	"strings"

	"hotel-paraiso-be/pkg/corpus"
)

// MenuEntry maps a numeric main-menu key (position+1) to an intent tag.
type MenuEntry struct {
	Name   string
	Intent string
}

// MainMenu is the static top-level menu. Read-only at runtime; the keys the
// user types are the 1-based positions in this slice.
var MainMenu = []MenuEntry{
	{Name: "Reservas y precios", Intent: "reserva_info"},
	{Name: "Habitaciones", Intent: "habitacion_info"},
	{Name: "Servicios del hotel", Intent: "servicios_info"},
	{Name: "Check-in / Check-out", Intent: "checkin_info"},
	{Name: "Ubicación y contacto", Intent: "ubicacion_info"},
	{Name: "Promociones y políticas", Intent: "promociones_info"},
	{Name: "Actividades y alrededores", Intent: "sugerencias"},
	{Name: "Reportar un problema", Intent: "quejas"},
}

// MenuEntryByKey resolves a typed digit string against the main menu.
func MenuEntryByKey(key string) (MenuEntry, bool) {
	for i, entry := range MainMenu {
		if key == fmt.Sprintf("%d", i+1) {
			return entry, true
		}
	}
	return MenuEntry{}, false
}

// RenderMainMenu produces the welcome menu text.
func RenderMainMenu() string {
	var b strings.Builder
	b.WriteString("🏖️ *Bienvenido al Hotel Paraíso Azul*\n\nSelecciona una opción:\n")
	for i, entry := range MainMenu {
		fmt.Fprintf(&b, "%d. %s\n", i+1, entry.Name)
	}
	b.WriteString("\nEscribe el número de la opción o 'salir' para terminar.")
	return b.String()
}

// RenderSubmenu lists the questions of one intent as a numbered submenu.
func RenderSubmenu(intent string, items []corpus.Entry) string {
	if len(items) == 0 {
		return "No hay información disponible para esta sección."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Has seleccionado '%s'. Estas son las opciones disponibles:\n", intent)
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Question)
	}
	b.WriteString("\nEscribe el número de la pregunta para ver la respuesta o 'menu' para regresar al inicio.")
	return b.String()
}
