package web

type ResultRow struct {
	Place     int
	ModelName string
	Code      string
	Average   string
	Votes     int
}

type ResultSection struct {
	CategoryName string
	Rows         []ResultRow
}

type ResultsPageData struct {
	EventName string
	Sections  []ResultSection
}

type Badge struct {
	DisplayName string
	EventName   string
	Code        string
	// QRDataURI is a base64 PNG data URI encoding the registration payload.
	QRDataURI string
}

type BadgeSheetData struct {
	EventName string
	Badges    []Badge
}
