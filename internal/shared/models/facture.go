package models

import (
	"math"

	"gestion-projets-core/internal/shared/ident"
)

// Facture utilise id_facture comme identifiant.
type Facture struct {
	ID           ident.ID `json:"id_facture"`
	Numero       string   `json:"numero" validate:"required,max=50"`
	Designation  string   `json:"designation,omitempty" validate:"omitempty,max=255"`
	MontantBrut  float64  `json:"montant_brut" validate:"gte=0"`
	MontantNet   float64  `json:"montant_net" validate:"gte=0"`
	MontantTVA   float64  `json:"montant_tva" validate:"gte=0"`
	MontantTTC   float64  `json:"montant_ttc" validate:"gte=0"`
	DateFacture  string   `json:"date_facture,omitempty"`
	DateEcheance string   `json:"date_echeance,omitempty"`
	Statut       string   `json:"statut,omitempty"`
	ProjetID     ident.ID `json:"projet_id"`
	SousProjetID ident.ID `json:"sous_projet_id"`
	MarcheID     ident.ID `json:"marche_id"`
}

func (f Facture) GetID() ident.ID { return f.ID }

func (f Facture) WithID(id ident.ID) Facture {
	f.ID = id
	return f
}

func (f Facture) SearchFields() []string {
	return []string{f.Numero, f.Designation, f.ProjetID.String()}
}

func (f Facture) SortDate() string { return f.DateFacture }

// Tolérance d'arrondi sur les montants (centimes).
const montantEpsilon = 0.01

// Incoherences liste les montants incohérents, par champ.
func (f Facture) Incoherences() map[string]string {
	out := map[string]string{}
	if f.MontantNet > f.MontantBrut+montantEpsilon {
		out["montant_net"] = "Le montant net ne peut pas dépasser le montant brut"
	}
	if math.Abs(f.MontantNet+f.MontantTVA-f.MontantTTC) > montantEpsilon {
		out["montant_ttc"] = "Le montant TTC doit être égal au montant net plus la TVA"
	}
	return out
}

type Marche struct {
	ID          ident.ID `json:"id"`
	Numero      string   `json:"numero" validate:"required,max=50"`
	Nom         string   `json:"nom" validate:"required,max=200"`
	Type        string   `json:"type,omitempty"`
	Fournisseur string   `json:"fournisseur,omitempty"`
	PrixHT      float64  `json:"prix_ht" validate:"gte=0"`
	PrixTTC     float64  `json:"prix_ttc" validate:"gte=0,gtefield=PrixHT"`
	DateDebut   string   `json:"date_debut,omitempty"`
	DateFin     string   `json:"date_fin,omitempty"`
	ProjetID    ident.ID `json:"projet_id"`
}

func (m Marche) GetID() ident.ID { return m.ID }

func (m Marche) WithID(id ident.ID) Marche {
	m.ID = id
	return m
}

func (m Marche) SearchFields() []string {
	return []string{m.Numero, m.Nom, m.Type, m.Fournisseur}
}

func (m Marche) SortDate() string { return m.DateDebut }

type MaitreOuvrage struct {
	ID        ident.ID `json:"id"`
	Nom       string   `json:"nom" validate:"required,max=200"`
	Type      string   `json:"type,omitempty" validate:"omitempty,max=50"`
	Telephone string   `json:"telephone,omitempty" validate:"omitempty,max=20"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email"`
	Adresse   string   `json:"adresse,omitempty"`
	ProjetID  ident.ID `json:"projet_id"`
}

func (m MaitreOuvrage) GetID() ident.ID { return m.ID }

func (m MaitreOuvrage) WithID(id ident.ID) MaitreOuvrage {
	m.ID = id
	return m
}

func (m MaitreOuvrage) SearchFields() []string {
	return []string{m.Nom, m.Type, m.Email, m.Telephone}
}

// SortDate: pas de date, l'ordre du backend est conservé.
func (m MaitreOuvrage) SortDate() string { return "" }
