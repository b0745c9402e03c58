package catalog

import (
	"github.com/llehouerou/actionbar/internal/locale"
	"github.com/llehouerou/actionbar/internal/toolbar"
)

// Builtin returns the demo toolbar used when no catalog file is given.
func Builtin() *Definition {
	return &Definition{
		Title: "Board actions",
		Actions: toolbar.Catalog{
			{Name: "OPEN", Label: "Open", Icon: "open", Tooltip: "Open the board"},
			{
				Name:           "ADD",
				Label:          "Add",
				Icon:           "add",
				IconColor:      "--primary",
				SubActionTitle: "Add a card",
				SubActions: []toolbar.Action{
					{Name: "ADD_TOP", Label: "On top", Icon: "up"},
					{Name: "ADD_BOTTOM", Label: "At the bottom", Icon: "down"},
				},
			},
			{Name: "EDIT", Label: "Edit", Icon: "edit"},
			{Name: "DELETE", Label: "Delete", Icon: "delete", IconColor: "--error"},
			{Name: "DOWNLOAD", Label: "Download", Icon: "download", Tooltip: "Export as CSV"},
			{Name: "ARCHIVE", Label: "Archive", Icon: "archive"},
		},
		Primary:     []string{"OPEN", "EDIT"},
		SemiPrimary: []string{"DOWNLOAD"},
		Disabled: toolbar.Disabled{
			"EDIT":    "User has no write permission",
			"ARCHIVE": "",
		},
		Resources: locale.Resources{
			"en": {
				"OPENTitle":              "Open",
				"ADDTitle":               "Add",
				"ADD_TOPTitle":           "Add on top",
				"ADD_BOTTOMTitle":        "Add at the bottom",
				"EDITTitle":              "Edit",
				"DELETETitle":            "Delete",
				"DOWNLOADTitle":          "Download",
				"ARCHIVETitle":           "Archive",
				"ARCHIVEDisabledTooltip": "Only closed boards can be archived",
			},
			"fr": {
				"OPENTitle":              "Ouvrir",
				"ADDTitle":               "Ajouter",
				"ADD_TOPTitle":           "Ajouter en haut",
				"ADD_BOTTOMTitle":        "Ajouter en bas",
				"EDITTitle":              "Modifier",
				"DELETETitle":            "Supprimer",
				"DOWNLOADTitle":          "Télécharger",
				"ARCHIVETitle":           "Archiver",
				"ARCHIVEDisabledTooltip": "Seuls les tableaux fermés peuvent être archivés",
			},
		},
	}
}
