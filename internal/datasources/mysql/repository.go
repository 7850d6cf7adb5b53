package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

const (
	articlesTable   = "tech_feed_articles"
	bookmarksTable  = "tech_feed_bookmarks"
	viewsTable      = "tech_feed_views"
	challengesTable = "coding_challenges"

	errDuplicateEntry uint16 = 1062
)

var articleColumns = []string{
	"id", "title", "summary", "full_content", "category", "subcategory",
	"image_url", "source_url", "source_name", "tags", "is_trending",
	"view_count", "ai_tldr", "published_date", "created_at",
}

var challengeColumns = []string{
	"id", "title", "description", "difficulty", "language",
	"starter_code", "solution", "test_cases", "published_date", "created_at",
}

var _ datasources.FeedRepository = (*Repository)(nil)

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func (r *Repository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query, args := buildArticlesQuery(filter)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStoreError("list articles", fmt.Errorf("running articles query: %w", err))
	}

	articles, err := scanArticles(ctx, rows)
	if err != nil {
		return nil, domain.NewStoreError("list articles", err)
	}
	return articles, nil
}

func (r *Repository) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	sb := sqlbuilder.Select(articleColumns...)
	sb.From(articlesTable)
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	article, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, &domain.NotFoundError{Entity: "article", ID: id}
	}
	if err != nil {
		return domain.Article{}, domain.NewStoreError("get article", err)
	}
	return article, nil
}

func (r *Repository) ListChallenges(ctx context.Context, limit int) ([]domain.CodingChallenge, error) {
	sb := sqlbuilder.Select(challengeColumns...)
	sb.From(challengesTable)
	sb.OrderBy("published_date DESC", "created_at DESC", "id ASC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStoreError("list challenges", fmt.Errorf("running challenges query: %w", err))
	}
	defer func() { _ = rows.Close() }()

	challenges := []domain.CodingChallenge{}
	for rows.Next() {
		c, err := scanChallenge(rows)
		if isRejectedRow(err) {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "skipping invalid challenge row", "challenge_id", c.ID, "error", err)
			continue
		}
		if err != nil {
			return nil, domain.NewStoreError("list challenges", err)
		}
		challenges = append(challenges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list challenges", fmt.Errorf("iterating rows: %w", err))
	}
	return challenges, nil
}

func (r *Repository) GetChallenge(ctx context.Context, id string) (domain.CodingChallenge, error) {
	sb := sqlbuilder.Select(challengeColumns...)
	sb.From(challengesTable)
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	c, err := scanChallenge(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CodingChallenge{}, &domain.NotFoundError{Entity: "challenge", ID: id}
	}
	if err != nil {
		return domain.CodingChallenge{}, domain.NewStoreError("get challenge", err)
	}
	return c, nil
}

func (r *Repository) InsertBookmark(ctx context.Context, userID, articleID string) (bool, error) {
	ib := sqlbuilder.InsertInto(bookmarksTable)
	ib.Cols("user_id", "article_id", "bookmarked_at")
	ib.Values(userID, articleID, r.now().UTC())

	inserted, err := r.execInsert(ctx, ib)
	if err != nil {
		return false, domain.NewStoreError("insert bookmark", err)
	}
	return inserted, nil
}

func (r *Repository) DeleteBookmark(ctx context.Context, userID, articleID string) error {
	del := sqlbuilder.DeleteFrom(bookmarksTable)
	del.Where(del.Equal("user_id", userID), del.Equal("article_id", articleID))

	query, args := del.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.NewStoreError("delete bookmark", fmt.Errorf("deleting bookmark: %w", err))
	}
	return nil
}

func (r *Repository) ListBookmarkedArticleIDs(ctx context.Context, userID string) ([]string, error) {
	sb := sqlbuilder.Select("article_id")
	sb.From(bookmarksTable)
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("bookmarked_at DESC", "id DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStoreError("list bookmarks", fmt.Errorf("running bookmarks query: %w", err))
	}
	defer func() { _ = rows.Close() }()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, domain.NewStoreError("list bookmarks", fmt.Errorf("scanning bookmark: %w", err))
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list bookmarks", fmt.Errorf("iterating rows: %w", err))
	}
	return ids, nil
}

func (r *Repository) ListBookmarkedArticles(ctx context.Context, userID string, limit int) ([]domain.Article, error) {
	cols := make([]string, 0, len(articleColumns))
	for _, c := range articleColumns {
		cols = append(cols, "a."+c)
	}

	sb := sqlbuilder.Select(cols...)
	sb.From(sb.As(bookmarksTable, "b"))
	sb.Join(sb.As(articlesTable, "a"), "a.id = b.article_id")
	sb.Where(sb.Equal("b.user_id", userID))
	sb.OrderBy("b.bookmarked_at DESC", "b.id DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStoreError("list bookmarked articles", fmt.Errorf("running bookmarked articles query: %w", err))
	}

	articles, err := scanArticles(ctx, rows)
	if err != nil {
		return nil, domain.NewStoreError("list bookmarked articles", err)
	}
	return articles, nil
}

func (r *Repository) InsertView(ctx context.Context, userID, articleID string) (bool, error) {
	ib := sqlbuilder.InsertInto(viewsTable)
	ib.Cols("user_id", "article_id", "viewed_at")
	ib.Values(userID, articleID, r.now().UTC())

	inserted, err := r.execInsert(ctx, ib)
	if err != nil {
		return false, domain.NewStoreError("insert view", err)
	}
	return inserted, nil
}

// IncrementViewCount issues view_count = view_count + 1 so concurrent increments never lose updates.
func (r *Repository) IncrementViewCount(ctx context.Context, articleID string) error {
	ub := sqlbuilder.Update(articlesTable)
	ub.Set(ub.Incr("view_count"))
	ub.Where(ub.Equal("id", articleID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.NewStoreError("increment view count", fmt.Errorf("updating view count: %w", err))
	}
	return nil
}

// execInsert runs an insert guarded by a unique key. A duplicate entry means
// the row already exists and is reported as inserted=false.
func (r *Repository) execInsert(ctx context.Context, ib *sqlbuilder.InsertBuilder) (bool, error) {
	query, args := ib.Build()
	_, err := r.db.ExecContext(ctx, query, args...)
	if isDuplicateEntry(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("running insert: %w", err)
	}
	return true, nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry
}

func buildArticlesQuery(filter domain.ArticleFilter) (string, []interface{}) {
	sb := sqlbuilder.Select(articleColumns...)
	sb.From(articlesTable)

	conds := buildArticlesConditions(sb, filter)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	sb.OrderBy(buildArticlesOrder(filter.Policy())...)
	sb.Limit(filter.Limit)

	return sb.Build()
}

func buildArticlesConditions(sb *sqlbuilder.SelectBuilder, filter domain.ArticleFilter) []string {
	var conds []string

	if filter.HasCategory() {
		conds = append(conds, sb.Equal("category", string(filter.Category)))
	}

	if filter.Subcategory != "" {
		conds = append(conds, sb.Equal("subcategory", string(filter.Subcategory)))
	}

	if filter.TrendingOnly {
		conds = append(conds, sb.Equal("is_trending", true))
	}

	if filter.Tag != "" {
		conds = append(conds, tagCondition(sb, filter.Tag))
	}

	if q, ok := domain.NormalizeQuery(filter.Query); ok {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		conds = append(conds, sb.Or(
			"LOWER(title) LIKE "+sb.Args.Add(pattern),
			"LOWER(summary) LIKE "+sb.Args.Add(pattern),
			tagCondition(sb, q),
		))
	}

	return conds
}

// tagCondition matches a tag case-insensitively against the JSON tags array.
func tagCondition(sb *sqlbuilder.SelectBuilder, tag string) string {
	return "JSON_CONTAINS(LOWER(tags), JSON_QUOTE(" + sb.Args.Add(strings.ToLower(tag)) + "))"
}

func buildArticlesOrder(policy domain.RankingPolicy) []string {
	recency := []string{"published_date DESC", "created_at DESC", "id ASC"}
	if policy == domain.RankTrending {
		return append([]string{"view_count DESC"}, recency...)
	}
	return recency
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// isRejectedRow reports whether a scan failed only because the row holds a
// value outside a closed set. Lists skip such rows; single reads fail.
func isRejectedRow(err error) bool {
	var validationErr *domain.ValidationError
	return errors.As(err, &validationErr)
}

func scanArticles(ctx context.Context, rows *sql.Rows) ([]domain.Article, error) {
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if isRejectedRow(err) {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "skipping invalid article row", "article_id", a.ID, "error", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return articles, nil
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var (
		a                                  domain.Article
		category                           string
		fullContent, subcategory, imageURL sql.NullString
		sourceURL, sourceName, aiTLDR      sql.NullString
		tags                               []byte
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Summary, &fullContent, &category, &subcategory,
		&imageURL, &sourceURL, &sourceName, &tags, &a.IsTrending,
		&a.ViewCount, &aiTLDR, &a.PublishedAt, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, err
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("scanning article: %w", err)
	}

	a.Category = domain.Category(category)
	a.Subcategory = domain.Subcategory(subcategory.String)
	a.FullContent = fullContent.String
	a.ImageURL = imageURL.String
	a.SourceURL = sourceURL.String
	a.SourceName = sourceName.String
	a.AITLDR = aiTLDR.String

	a.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &a.Tags); err != nil {
			return domain.Article{}, fmt.Errorf("decoding tags for article %s: %w", a.ID, err)
		}
	}

	if err := a.Validate(); err != nil {
		return domain.Article{ID: a.ID}, fmt.Errorf("rejecting article %s: %w", a.ID, err)
	}
	return a, nil
}

func scanChallenge(row rowScanner) (domain.CodingChallenge, error) {
	var (
		c                     domain.CodingChallenge
		difficulty            string
		languages             []byte
		starterCode, solution sql.NullString
		testCases             []byte
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &difficulty, &languages,
		&starterCode, &solution, &testCases, &c.PublishedAt, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CodingChallenge{}, err
	}
	if err != nil {
		return domain.CodingChallenge{}, fmt.Errorf("scanning challenge: %w", err)
	}

	c.Difficulty = domain.Difficulty(difficulty)
	c.StarterCode = starterCode.String
	c.Solution = solution.String
	if len(testCases) > 0 {
		c.TestCases = json.RawMessage(testCases)
	}
	if err := json.Unmarshal(languages, &c.Languages); err != nil {
		return domain.CodingChallenge{}, fmt.Errorf("decoding languages for challenge %s: %w", c.ID, err)
	}

	if err := c.Validate(); err != nil {
		return domain.CodingChallenge{ID: c.ID}, fmt.Errorf("rejecting challenge %s: %w", c.ID, err)
	}
	return c, nil
}
