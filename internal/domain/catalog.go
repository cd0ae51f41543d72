package domain

// Catalog records are static, read-only content supplied as JSON files
// at deployment time. The JSON tags match the catalog files and the
// wire format the frontend already speaks.

// Letter is an unlockable letter the user can read once for a star.
type Letter struct {
	ID    int    `json:"id"`
	Title string `json:"titulo"`
	Body  string `json:"contenido"`
}

// Reason is a textual reason gated behind a consideration-point threshold.
type Reason struct {
	ID             int    `json:"id"`
	Text           string `json:"texto"`
	Emoji          string `json:"emoji"`
	Category       string `json:"categoria"`
	PointsRequired int    `json:"puntos_requeridos"`
}

// Prize is redeemable for stars. Available is a catalog-level flag;
// claims are tracked on the Progress record.
type Prize struct {
	ID        int    `json:"id"`
	Name      string `json:"nombre"`
	Emoji     string `json:"emoji"`
	Cost      int    `json:"costo"`
	Available bool   `json:"disponible"`
}

// Song is a playlist entry with the reason it was picked.
type Song struct {
	ID     int    `json:"id"`
	Name   string `json:"nombre"`
	Artist string `json:"artista"`
	Link   string `json:"link"`
	Reason string `json:"motivo"`
}

// Phrase is a static phrase shown by the frontend; phrases never touch
// the Progress record.
type Phrase struct {
	ID       int    `json:"id"`
	Text     string `json:"texto"`
	Category string `json:"categoria"`
	Emoji    string `json:"emoji"`
}

// Phrase categories present in the catalog.
const (
	PhraseCategoryRomantic    = "romantica"
	PhraseCategoryGoodJoke    = "chiste_bueno"
	PhraseCategoryBadJoke     = "chiste_malo"
	PhraseCategoryCuriousFact = "dato_curioso"
)
