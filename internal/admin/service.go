// internal/admin/service.go
//
// Admin operations over the content store.
//
// Context
// -------
// One service method per admin mutation.  Every method validates its
// DTO first (go-playground/validator), then delegates to the store;
// validation failure blocks the write with a 400 carrying field names.
// Reordering resolves the row's neighbor in the displayed (sorted)
// list and swaps the two display_order values in one transaction, so a
// failed swap can never persist a duplicate order.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/auth"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
)

// Service exposes the admin surface.
type Service struct {
	store    *store.Store
	tokens   auth.TokenService
	validate *validator.Validate
}

// New returns a Service over the given store and token signer.
func New(st *store.Store, tokens auth.TokenService) *Service {
	return &Service{
		store:    st,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// check runs struct validation and converts failures into a 400 that
// names the offending fields.
func (s *Service) check(in any) error {
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return ErrBadRequest("invalid fields: " + strings.Join(fields, ", "))
		}
		return ErrBadRequest("invalid payload")
	}
	return nil
}

//
// Auth
//

// Login verifies credentials against admin_users and issues an access
// token.  Unknown email and wrong password are indistinguishable to the
// caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	u, err := s.store.AdminUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized("invalid credentials")
		}
		return nil, WrapError(err, "login lookup")
	}
	if !auth.VerifyPassword(in.Password, u.PasswordHash) {
		return nil, ErrUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokens.CreateAccessToken(
		strconv.FormatUint(u.ID, 10), u.Email, u.Role)
	if err != nil {
		return nil, WrapError(err, "sign token")
	}
	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   exp,
		Email:       u.Email,
		Role:        u.Role,
	}, nil
}

//
// Pages
//

func (s *Service) ListPages(ctx context.Context) ([]store.Page, error) {
	return s.store.Pages(ctx)
}

func (s *Service) CreatePage(ctx context.Context, in PageInput) (uint64, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	return s.store.CreatePage(ctx, store.Page{
		PageName:            in.PageName,
		DisplayOrder:        in.DisplayOrder,
		IsVisible:           in.IsVisible,
		IncludeInNavigation: in.IncludeInNavigation,
	})
}

func (s *Service) UpdatePage(ctx context.Context, in PageInput) error {
	if err := s.check(in); err != nil {
		return err
	}
	if in.ID == 0 {
		return ErrBadRequest("missing id")
	}
	return s.store.UpdatePage(ctx, store.Page{
		ID:                  in.ID,
		PageName:            in.PageName,
		DisplayOrder:        in.DisplayOrder,
		IsVisible:           in.IsVisible,
		IncludeInNavigation: in.IncludeInNavigation,
	})
}

func (s *Service) DeletePage(ctx context.Context, id uint64) error {
	err := s.store.DeletePage(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound("page not found")
	case errors.Is(err, store.ErrSystemPage):
		return ErrForbidden("system pages cannot be deleted")
	}
	return err
}

func (s *Service) MovePage(ctx context.Context, in MoveInput) error {
	if err := s.check(in); err != nil {
		return err
	}
	rows, err := s.store.Pages(ctx)
	if err != nil {
		return err
	}
	ordered := make([]store.OrderedRow, len(rows))
	for i, p := range rows {
		ordered[i] = store.OrderedRow{ID: p.ID, DisplayOrder: p.DisplayOrder}
	}
	return s.swapNeighbor(ctx, store.TablePages, ordered, in)
}

//
// Sections
//

func (s *Service) ListSections(ctx context.Context, page string) ([]store.Section, error) {
	if page == "" {
		return nil, ErrBadRequest("missing page scope")
	}
	return s.store.SectionsByPage(ctx, page)
}

func (s *Service) CreateSection(ctx context.Context, in SectionInput) (uint64, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	return s.store.CreateSection(ctx, sectionFromInput(in))
}

func (s *Service) UpdateSection(ctx context.Context, in SectionInput) error {
	if err := s.check(in); err != nil {
		return err
	}
	if in.ID == 0 {
		return ErrBadRequest("missing id")
	}
	return s.store.UpdateSection(ctx, sectionFromInput(in))
}

func (s *Service) DeleteSection(ctx context.Context, id uint64) error {
	return s.store.DeleteSection(ctx, id)
}

// MoveSection reorders within the owning page; Scope carries the page
// name the admin tab is looking at.
func (s *Service) MoveSection(ctx context.Context, in MoveInput) error {
	if err := s.check(in); err != nil {
		return err
	}
	if in.Scope == "" {
		return ErrBadRequest("missing page scope")
	}
	rows, err := s.store.SectionsByPage(ctx, in.Scope)
	if err != nil {
		return err
	}
	ordered := make([]store.OrderedRow, len(rows))
	for i, r := range rows {
		ordered[i] = store.OrderedRow{ID: r.ID, DisplayOrder: r.DisplayOrder}
	}
	return s.swapNeighbor(ctx, store.TableSections, ordered, in)
}

func sectionFromInput(in SectionInput) store.Section {
	return store.Section{
		ID:              in.ID,
		SectionName:     in.SectionName,
		Page:            in.Page,
		LayoutType:      in.LayoutType,
		DisplayOrder:    in.DisplayOrder,
		IsVisible:       in.IsVisible,
		BackgroundColor: in.BackgroundColor,
		BackgroundImage: in.BackgroundImage,
	}
}

//
// Content fields
//

func (s *Service) ListContent(ctx context.Context, section string) ([]store.ContentField, error) {
	if section == "" {
		return nil, ErrBadRequest("missing section scope")
	}
	return s.store.ContentBySection(ctx, section)
}

// SaveContent writes a content row and, when in.Style is set, its
// `_style` sidecar in the same transaction.
func (s *Service) SaveContent(ctx context.Context, in ContentInput) (uint64, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	return s.store.SaveContentWithStyle(ctx, store.ContentField{
		ID:                    in.ID,
		Section:               in.Section,
		ContentType:           in.ContentType,
		Content:               in.Content,
		FieldType:             in.FieldType,
		DisplayOrder:          in.DisplayOrder,
		IsVisible:             in.IsVisible,
		IncludeInGlobalSearch: in.IncludeInGlobalSearch,
	}, in.Style)
}

func (s *Service) DeleteContent(ctx context.Context, id uint64) error {
	err := s.store.DeleteContent(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound("content field not found")
	}
	return err
}

func (s *Service) MoveContent(ctx context.Context, in MoveInput) error {
	if err := s.check(in); err != nil {
		return err
	}
	if in.Scope == "" {
		return ErrBadRequest("missing section scope")
	}
	rows, err := s.store.ContentBySection(ctx, in.Scope)
	if err != nil {
		return err
	}
	ordered := make([]store.OrderedRow, 0, len(rows))
	for _, r := range rows {
		if r.IsStyleSidecar() {
			continue // sidecars do not participate in ordering
		}
		ordered = append(ordered, store.OrderedRow{ID: r.ID, DisplayOrder: r.DisplayOrder})
	}
	return s.swapNeighbor(ctx, store.TableContent, ordered, in)
}

//
// Navigation and menu
//

func (s *Service) ListNavigation(ctx context.Context) ([]store.NavigationItem, error) {
	return s.store.NavigationItems(ctx)
}

func (s *Service) SaveNavigation(ctx context.Context, in NavigationInput) (uint64, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	item := store.NavigationItem{
		ID:            in.ID,
		Label:         in.Label,
		TargetSection: in.TargetSection,
		DisplayOrder:  in.DisplayOrder,
		IsVisible:     in.IsVisible,
		ButtonType:    in.ButtonType,
	}
	if in.ID == 0 {
		return s.store.CreateNavigationItem(ctx, item)
	}
	return in.ID, s.store.UpdateNavigationItem(ctx, item)
}

func (s *Service) DeleteNavigation(ctx context.Context, id uint64) error {
	return s.store.DeleteNavigationItem(ctx, id)
}

func (s *Service) MoveNavigation(ctx context.Context, in MoveInput) error {
	if err := s.check(in); err != nil {
		return err
	}
	rows, err := s.store.NavigationItems(ctx)
	if err != nil {
		return err
	}
	ordered := make([]store.OrderedRow, len(rows))
	for i, r := range rows {
		ordered[i] = store.OrderedRow{ID: r.ID, DisplayOrder: r.DisplayOrder}
	}
	return s.swapNeighbor(ctx, store.TableNavigation, ordered, in)
}

func (s *Service) ListMenu(ctx context.Context) ([]store.MenuEntry, error) {
	return s.store.MenuEntries(ctx)
}

func (s *Service) SaveMenu(ctx context.Context, in MenuInput) (uint64, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	entry := store.MenuEntry{
		ID:           in.ID,
		Label:        in.Label,
		Target:       in.Target,
		DisplayOrder: in.DisplayOrder,
		IsVisible:    in.IsVisible,
		ButtonType:   in.ButtonType,
	}
	if in.ID == 0 {
		return s.store.CreateMenuEntry(ctx, entry)
	}
	return in.ID, s.store.UpdateMenuEntry(ctx, entry)
}

func (s *Service) DeleteMenu(ctx context.Context, id uint64) error {
	return s.store.DeleteMenuEntry(ctx, id)
}

func (s *Service) MoveMenu(ctx context.Context, in MoveInput) error {
	if err := s.check(in); err != nil {
		return err
	}
	rows, err := s.store.MenuEntries(ctx)
	if err != nil {
		return err
	}
	ordered := make([]store.OrderedRow, len(rows))
	for i, r := range rows {
		ordered[i] = store.OrderedRow{ID: r.ID, DisplayOrder: r.DisplayOrder}
	}
	return s.swapNeighbor(ctx, store.TableMenu, ordered, in)
}

//
// Projects and articles
//

func (s *Service) ListProjects(ctx context.Context) ([]store.Project, error) {
	return s.store.Projects(ctx)
}

func (s *Service) SaveProject(ctx context.Context, in ProjectInput) (uint64, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	p := store.Project{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Tags:        strings.Join(in.Tags, ","),
		Link:        in.Link,
	}
	if in.ID == 0 {
		return s.store.CreateProject(ctx, p)
	}
	return in.ID, s.store.UpdateProject(ctx, p)
}

func (s *Service) DeleteProject(ctx context.Context, id uint64) error {
	return s.store.DeleteProject(ctx, id)
}

func (s *Service) ListArticles(ctx context.Context) ([]store.Article, error) {
	return s.store.Articles(ctx)
}

func (s *Service) SaveArticle(ctx context.Context, in ArticleInput) (uint64, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return 0, ErrBadRequest("invalid date")
	}
	a := store.Article{
		ID:       in.ID,
		Title:    in.Title,
		Category: in.Category,
		Excerpt:  in.Excerpt,
		Content:  in.Content,
		Date:     date,
		ReadTime: in.ReadTime,
		Link:     in.Link,
	}
	if in.ID == 0 {
		return s.store.CreateArticle(ctx, a)
	}
	return in.ID, s.store.UpdateArticle(ctx, a)
}

func (s *Service) DeleteArticle(ctx context.Context, id uint64) error {
	return s.store.DeleteArticle(ctx, id)
}

//
// Site settings
//

func (s *Service) Settings(ctx context.Context) (map[string]string, error) {
	return s.store.Settings(ctx)
}

func (s *Service) SaveSetting(ctx context.Context, in SettingInput) error {
	if err := s.check(in); err != nil {
		return err
	}
	return s.store.SetSetting(ctx, in.Key, in.Value)
}

//
// Stats and messages
//

func (s *Service) VisitCount(ctx context.Context) (int64, error) {
	return s.store.VisitCount(ctx)
}

func (s *Service) ContactMessages(ctx context.Context, limit int) ([]store.ContactMessage, error) {
	return s.store.ContactMessages(ctx, limit)
}

//
// Reorder helper
//

// swapNeighbor locates in.ID inside the displayed order and swaps it
// with the neighbor in the requested direction.  The first row cannot
// move up, nor the last row down.
func (s *Service) swapNeighbor(ctx context.Context, table string, rows []store.OrderedRow, in MoveInput) error {
	idx := -1
	for i, r := range rows {
		if r.ID == in.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound(fmt.Sprintf("row %d not found in %s", in.ID, table))
	}

	var other int
	switch in.Direction {
	case "up":
		other = idx - 1
	case "down":
		other = idx + 1
	}
	if other < 0 || other >= len(rows) {
		return ErrBadRequest("row is already at the edge")
	}

	return s.store.SwapOrder(ctx, table, rows[idx], rows[other])
}
