package nav

// RowType distinguishes sidebar rows.
type RowType int

const (
	RowSearch RowType = iota
	RowItem
	RowHeader
)

// Row is one line of the sidebar list.
type Row struct {
	Type    RowType
	Dest    Destination // zero for headers
	Section Section     // set for headers and section children
	Label   string
	Icon    Icon
	// InSection is true for children of a collapsible section.
	InSection bool
}

// ID returns a key for list diffing.
func (r Row) ID() string {
	switch r.Type {
	case RowSearch:
		return "row-search"
	case RowHeader:
		return "header-" + r.Section.String()
	default:
		return r.Dest.ID()
	}
}

// Selectable reports whether activating the row changes the selection.
func (r Row) Selectable() bool {
	return r.Type == RowItem
}

// SidebarRows builds the flattened sidebar for the current disclosure flags:
// the search field, the main destinations, then the Library and Playlists
// sections. Collapsed sections contribute only their header.
func SidebarRows(n *Navigator, playlists []Playlist) []Row {
	rows := make([]Row, 0, 3+len(MainDestinations)+len(LibraryKinds)+len(playlists))
	rows = append(rows, Row{Type: RowSearch, Dest: Search, Label: "Search", Icon: IconSearch})

	for _, d := range MainDestinations {
		rows = append(rows, itemRow(d, 0, false))
	}

	rows = append(rows, Row{Type: RowHeader, Section: SectionLibrary, Label: SectionLibrary.String()})
	if n.Expanded(SectionLibrary) {
		for _, k := range LibraryKinds {
			rows = append(rows, itemRow(LibrarySection(k), SectionLibrary, true))
		}
	}

	rows = append(rows, Row{Type: RowHeader, Section: SectionPlaylists, Label: SectionPlaylists.String()})
	if n.Expanded(SectionPlaylists) {
		for _, p := range playlists {
			rows = append(rows, itemRow(PlaylistDestination(p), SectionPlaylists, true))
		}
	}

	return rows
}

func itemRow(d Destination, s Section, inSection bool) Row {
	return Row{
		Type:      RowItem,
		Dest:      d,
		Section:   s,
		Label:     d.Title(),
		Icon:      d.Icon(),
		InSection: inSection,
	}
}
