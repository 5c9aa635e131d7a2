// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menurender

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/sufra-dev/sufra/internal/content"
	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/style"
	"github.com/sufra-dev/sufra/internal/theme"
	"github.com/sufra-dev/sufra/internal/util"
)

// PageInput carries everything a page render needs. Theme must already
// be normalized (theme.Parse does this); the builder never validates.
type PageInput struct {
	Graph  model.MenuGraph
	Theme  theme.Descriptor
	Locale string
	Filter Filter
	// ActiveCategoryID selects the visible tab in tabbed navigation.
	// Zero or an unknown id falls back to the first category.
	ActiveCategoryID int64
	Fidelity         style.Fidelity
	ShowPoweredBy    bool
	AboutMD          string
	Feedback         *model.FeedbackSummary
}

// PageView is the fully resolved, template-ready menu page.
type PageView struct {
	Slug           string
	Locale         string
	Dir            string
	Title          string
	SecondaryTitle string
	Currency       string

	Theme     theme.Descriptor
	CSSVars   template.CSS
	FontLinks []string

	ItemStrategy     style.ItemStrategy
	CategoryStrategy style.CategoryStrategy
	Decoration       style.DecorationStrategy
	DecorationColor  string
	// ShowDecorations is the effective flag: the feature toggle AND a
	// motif that actually renders something.
	ShowDecorations bool
	ShowPhotos      bool

	// Tabbed navigation renders the full tab bar and only the active
	// tab's items; scroll navigation renders every category in order.
	Tabbed bool
	Tabs   []TabView

	Categories []CategoryView
	// Empty means no category survived the filter (or the menu has
	// none at all); templates show the empty state instead.
	Empty bool

	Filter         Filter
	FavoritesCount int
	Fidelity       style.Fidelity
	ShowPoweredBy  bool
	AboutHTML      template.HTML
	Feedback       *model.FeedbackSummary
}

// TabView is one entry of the tabbed layout's category bar. The bar
// always lists every category, filtered or not.
type TabView struct {
	ID     int64
	Title  string
	Active bool
}

// CategoryView is one resolved category section.
type CategoryView struct {
	ID             int64
	Title          string
	SecondaryTitle string
	Description    string
	// ShowDivider renders the inter-category divider motif before this
	// section. Never set on the first visible category.
	ShowDivider bool
	Items       []ItemView
}

// ItemView is one resolved item card.
type ItemView struct {
	ID            int64
	Locale        string
	Slug          string
	Name          string
	SecondaryName string
	Description   string
	Price         string
	PhotoURL      string
	ShowPhoto     bool
	Unavailable   bool
	Special       bool
	Favorite      bool
	// Featured marks the magazine layout's larger card shape.
	Featured    bool
	Allergens   []string
	DietaryTags []string
	Variants    []VariantView
}

// VariantView is one resolved variant row.
type VariantView struct {
	Name  string
	Delta string
}

// BuildPage resolves a menu graph against a theme, locale and filter
// into a renderable page view. It is a pure function of its input;
// identical inputs yield identical views.
func BuildPage(in PageInput) PageView {
	d := in.Theme

	itemStrat := style.ItemStrategyFor(d.ItemStyle())
	catStrat := style.CategoryStrategyFor(d.CategoryStyle())
	decoStrat := style.DecorationStrategyFor(d.DecorationType())

	showDecorations := d.Features.ShowDecorations && decoStrat.HasOverlay()
	// Thumbnails stay text-only regardless of theme flags.
	showPhotos := d.Features.ShowPhotos && in.Fidelity != style.FidelityThumbnail

	filtered := in.Filter.Apply(in.Graph.Categories)

	tabbed := d.NavMode() == style.NavTabs
	var tabs []TabView
	if tabbed && len(in.Graph.Categories) > 0 {
		activeID := in.ActiveCategoryID
		if !containsCategory(in.Graph.Categories, activeID) {
			activeID = in.Graph.Categories[0].Category.ID
		}
		tabs = make([]TabView, 0, len(in.Graph.Categories))
		for _, cat := range in.Graph.Categories {
			tabs = append(tabs, TabView{
				ID:     cat.Category.ID,
				Title:  content.ResolveName(in.Locale, cat.Category.NameAr, cat.Category.NameEn),
				Active: cat.Category.ID == activeID,
			})
		}

		kept := filtered[:0:0]
		for _, cat := range filtered {
			if cat.Category.ID == activeID {
				kept = append(kept, cat)
			}
		}
		filtered = kept
	}

	categories := make([]CategoryView, 0, len(filtered))
	for ci, cat := range filtered {
		cv := CategoryView{
			ID:             cat.Category.ID,
			Title:          content.ResolveName(in.Locale, cat.Category.NameAr, cat.Category.NameEn),
			SecondaryTitle: content.SecondaryName(in.Locale, cat.Category.NameAr, cat.Category.NameEn),
			ShowDivider:    showDecorations && decoStrat.Divider && ci > 0,
		}
		if desc := content.ResolveDescription(in.Locale, cat.Category.DescriptionAr, cat.Category.DescriptionEn); desc != nil {
			cv.Description = *desc
		}

		cv.Items = make([]ItemView, 0, len(cat.Items))
		for pos, it := range cat.Items {
			cv.Items = append(cv.Items, buildItem(in, itemStrat, showPhotos, pos, it))
		}
		categories = append(categories, cv)
	}

	fonts := NewFontInjector()
	fonts.Inject(d.Typography.HeadingFont)
	fonts.Inject(d.Typography.BodyFont)

	view := PageView{
		Slug:             in.Graph.Menu.Slug,
		Locale:           in.Locale,
		Dir:              content.Direction(in.Locale),
		Title:            content.ResolveName(in.Locale, in.Graph.Menu.NameAr, in.Graph.Menu.NameEn),
		SecondaryTitle:   content.SecondaryName(in.Locale, in.Graph.Menu.NameAr, in.Graph.Menu.NameEn),
		Currency:         in.Graph.Menu.Currency,
		Theme:            d,
		CSSVars:          cssVars(d),
		FontLinks:        fonts.StylesheetURLs(),
		ItemStrategy:     itemStrat,
		CategoryStrategy: catStrat,
		Decoration:       decoStrat,
		DecorationColor:  d.DecorationColor(),
		ShowDecorations:  showDecorations,
		ShowPhotos:       showPhotos,
		Tabbed:           tabbed,
		Tabs:             tabs,
		Categories:       categories,
		Empty:            len(categories) == 0,
		Filter:           in.Filter,
		FavoritesCount:   len(in.Filter.Favorites),
		Fidelity:         in.Fidelity,
		ShowPoweredBy:    in.ShowPoweredBy,
		Feedback:         in.Feedback,
	}

	if in.AboutMD != "" && in.Fidelity == style.FidelityFull {
		view.AboutHTML = RenderMarkdown(in.AboutMD)
	}

	return view
}

func containsCategory(categories []model.CategoryWithItems, id int64) bool {
	for _, cat := range categories {
		if cat.Category.ID == id {
			return true
		}
	}
	return false
}

// buildItem resolves one item. Position is the item's index within its
// filtered category; the magazine strategy features every third one.
func buildItem(in PageInput, strat style.ItemStrategy, showPhotos bool, position int, it model.ItemWithVariants) ItemView {
	item := it.Item

	iv := ItemView{
		ID:            item.ID,
		Locale:        in.Locale,
		Slug:          in.Graph.Menu.Slug,
		Name:          content.ResolveName(in.Locale, item.NameAr, item.NameEn),
		SecondaryName: content.SecondaryName(in.Locale, item.NameAr, item.NameEn),
		Price:         content.FormatPrice(item.Price, in.Graph.Menu.Currency),
		PhotoURL:      util.StringOrEmpty(item.PhotoURL),
		Unavailable:   item.IsUnavailable(),
		Special:       item.IsSpecial,
		Favorite:      in.Filter.Favorites[item.ID],
		Featured:      strat.Featured(position),
		Allergens:     item.AllergenList(),
		DietaryTags:   item.DietaryTagList(),
	}
	iv.ShowPhoto = showPhotos && iv.PhotoURL != ""

	if desc := content.ResolveDescription(in.Locale, item.DescriptionAr, item.DescriptionEn); desc != nil {
		iv.Description = *desc
	}

	iv.Variants = make([]VariantView, 0, len(it.Variants))
	for _, v := range it.Variants {
		iv.Variants = append(iv.Variants, VariantView{
			Name:  content.ResolveName(in.Locale, v.NameAr, v.NameEn),
			Delta: content.FormatDelta(v.PriceDelta),
		})
	}

	return iv
}

// BuildItemDetail resolves one item for the detail overlay, reusing the
// card builder so badges and prices never diverge from the list view.
func BuildItemDetail(in PageInput, it model.ItemWithVariants) ItemView {
	strat := style.ItemStrategyFor(in.Theme.ItemStyle())
	showPhotos := in.Theme.Features.ShowPhotos && in.Fidelity != style.FidelityThumbnail
	return buildItem(in, strat, showPhotos, 0, it)
}

// cssVars flattens the palette, fonts and decoration color into CSS
// custom properties scoped by the page container.
func cssVars(d theme.Descriptor) template.CSS {
	var sb strings.Builder
	for _, role := range theme.ColorRoles() {
		fmt.Fprintf(&sb, "--color-%s:%s;", cssRole(role), d.Color(role))
	}
	fmt.Fprintf(&sb, "--color-decoration:%s;", d.DecorationColor())
	fmt.Fprintf(&sb, "--font-heading:'%s',sans-serif;", d.Typography.HeadingFont)
	fmt.Fprintf(&sb, "--font-body:'%s',sans-serif;", d.Typography.BodyFont)

	return template.CSS(sb.String())
}

// cssRole converts a camelCase role name to kebab-case.
func cssRole(role string) string {
	var sb strings.Builder
	for _, r := range role {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
