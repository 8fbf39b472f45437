package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"hackhub/models"
)

const (
	collegeColumns = "id, college_id, name, location, city, state, official_website, official_email, " +
		"status, views, created_at"
	clubColumns = "c.id, c.college_id, co.name, co.college_id, c.name, c.slug, c.email, c.description, " +
		"COALESCE(c.about, ''), c.contact_info, c.status, c.category_id, cat.name, cat.slug, cat.color, " +
		"c.views, c.created_at"
	clubJoins = " FROM clubs c JOIN colleges co ON co.id = c.college_id JOIN categories cat ON cat.id = c.category_id"
)

func scanCollege(row scanner) (models.College, error) {
	var c models.College
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Location,
		&c.City,
		&c.State,
		&c.OfficialWebsite,
		&c.OfficialEmail,
		&c.Status,
		&c.Views,
		&c.CreatedAt,
	)
	return c, err
}

func scanClub(row scanner) (models.Club, error) {
	var (
		c       models.Club
		contact []byte
	)
	err := row.Scan(
		&c.ID,
		&c.CollegeID,
		&c.CollegeName,
		&c.CollegeCode,
		&c.Name,
		&c.Slug,
		&c.Email,
		&c.Description,
		&c.About,
		&contact,
		&c.Status,
		&c.CategoryID,
		&c.CategoryName,
		&c.CategorySlug,
		&c.CategoryColor,
		&c.Views,
		&c.CreatedAt,
	)
	if len(contact) > 0 {
		c.ContactInfo = contact
	}
	return c, err
}

func (r PostgresRepository) queryClubs(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]models.Club, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := []models.Club{}
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

func (r PostgresRepository) exists(
	ctx context.Context,
	query string,
	args ...interface{},
) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS ("+query+")", args...).Scan(&ok)
	return ok, err
}

func (r PostgresRepository) CollegeCodeExists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM colleges WHERE college_id=$1", code)
}

// CreateCollege inserts the college and its admin account together.
func (r PostgresRepository) CreateCollege(
	ctx context.Context,
	college models.College,
	admin models.CollegeAdmin,
) (models.College, error) {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(
			ctx,
			`INSERT INTO colleges (college_id, name, location, city, state, official_website, official_email, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`,
			college.Code, college.Name, college.Location, college.City, college.State,
			college.OfficialWebsite, college.OfficialEmail, college.Status,
		).Scan(&college.ID, &college.CreatedAt)
		if err != nil {
			return storageErr(err)
		}
		_, err = tx.ExecContext(
			ctx,
			"INSERT INTO college_admins (college_id, email, password_hash) VALUES ($1, $2, $3)",
			college.ID, admin.Email, admin.PasswordHash,
		)
		return storageErr(err)
	})
	if err != nil {
		return models.College{}, err
	}
	return college, nil
}

func (r PostgresRepository) GetCollege(ctx context.Context, id int) (models.College, error) {
	return scanCollege(r.db.QueryRowContext(ctx, "SELECT "+collegeColumns+" FROM colleges WHERE id=$1", id))
}

func (r PostgresRepository) FindCollegeByCode(ctx context.Context, code string) (models.College, error) {
	return scanCollege(r.db.QueryRowContext(ctx, "SELECT "+collegeColumns+" FROM colleges WHERE college_id=$1", code))
}

// FindCollegeByName returns the first college, by name, whose name contains name.
func (r PostgresRepository) FindCollegeByName(ctx context.Context, name string) (models.College, error) {
	return scanCollege(r.db.QueryRowContext(
		ctx,
		"SELECT "+collegeColumns+" FROM colleges WHERE name ILIKE '%' || $1 || '%' ORDER BY name LIMIT 1",
		name,
	))
}

func (r PostgresRepository) ListColleges(ctx context.Context, search string) ([]models.College, error) {
	var c conditions
	c.add("status = ?", "active")
	if search != "" {
		c.add("(name ILIKE ? OR city ILIKE ? OR college_id ILIKE ?)", "%"+search+"%")
	}
	rows, err := r.db.QueryContext(ctx, "SELECT "+collegeColumns+" FROM colleges"+c.where()+" ORDER BY name", c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colleges := []models.College{}
	for rows.Next() {
		col, err := scanCollege(rows)
		if err != nil {
			return nil, err
		}
		colleges = append(colleges, col)
	}
	return colleges, rows.Err()
}

func (r PostgresRepository) GetCollegeAdminByEmail(
	ctx context.Context,
	email string,
) (models.CollegeAdmin, error) {
	var a models.CollegeAdmin
	err := r.db.QueryRowContext(
		ctx,
		"SELECT id, college_id, email, password_hash FROM college_admins WHERE email=$1",
		email,
	).Scan(&a.ID, &a.CollegeID, &a.Email, &a.PasswordHash)
	return a, err
}

func (r PostgresRepository) ClubAdminEmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM club_admins WHERE email=$1", email)
}

func (r PostgresRepository) ClubSlugExists(ctx context.Context, collegeID int, slug string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM clubs WHERE college_id=$1 AND slug=$2", collegeID, slug)
}

// CreateClub inserts the club and its admin account together and returns the
// club id.
func (r PostgresRepository) CreateClub(
	ctx context.Context,
	club models.Club,
	admin models.ClubAdmin,
) (int, error) {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(
			ctx,
			`INSERT INTO clubs (college_id, category_id, name, slug, email, description, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			club.CollegeID, club.CategoryID, club.Name, club.Slug, club.Email, club.Description, club.Status,
		).Scan(&club.ID)
		if err != nil {
			return storageErr(err)
		}
		_, err = tx.ExecContext(
			ctx,
			"INSERT INTO club_admins (club_id, name, email, password_hash) VALUES ($1, $2, $3, $4)",
			club.ID, admin.Name, admin.Email, admin.PasswordHash,
		)
		return storageErr(err)
	})
	if err != nil {
		return 0, err
	}
	return club.ID, nil
}

func (r PostgresRepository) GetClubAdminByEmail(
	ctx context.Context,
	email string,
) (models.ClubAdmin, error) {
	var a models.ClubAdmin
	err := r.db.QueryRowContext(
		ctx,
		`SELECT a.id, a.club_id, c.name, c.status, a.name, a.email, a.password_hash
		 FROM club_admins a JOIN clubs c ON c.id = a.club_id
		 WHERE a.email=$1`,
		email,
	).Scan(&a.ID, &a.ClubID, &a.ClubName, &a.ClubStatus, &a.Name, &a.Email, &a.PasswordHash)
	return a, err
}

func (r PostgresRepository) TouchClubAdminLogin(ctx context.Context, adminID int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE club_admins SET last_login=now() WHERE id=$1", adminID)
	return err
}

// ListClubs returns approved clubs matching filter, ordered by name.
func (r PostgresRepository) ListClubs(
	ctx context.Context,
	filter models.ClubFilter,
) ([]models.Club, error) {
	var c conditions
	c.add("c.status = ?", models.ClubApproved)
	if filter.CollegeID > 0 {
		c.add("c.college_id = ?", filter.CollegeID)
	}
	if filter.CollegeCode != "" {
		c.add("co.college_id = ?", filter.CollegeCode)
	}
	if filter.CategoryID > 0 {
		c.add("c.category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		c.add("(c.name ILIKE ? OR c.description ILIKE ?)", "%"+filter.Search+"%")
	}
	return r.queryClubs(ctx, "SELECT "+clubColumns+clubJoins+c.where()+" ORDER BY c.name", c.args...)
}

// ListCollegeClubs returns every club of the college regardless of status,
// newest first.
func (r PostgresRepository) ListCollegeClubs(ctx context.Context, collegeID int) ([]models.Club, error) {
	return r.queryClubs(
		ctx,
		"SELECT "+clubColumns+clubJoins+" WHERE c.college_id=$1 ORDER BY c.created_at DESC",
		collegeID,
	)
}

func (r PostgresRepository) GetApprovedClub(ctx context.Context, id int) (models.Club, error) {
	return scanClub(r.db.QueryRowContext(
		ctx,
		"SELECT "+clubColumns+clubJoins+" WHERE c.id=$1 AND c.status=$2",
		id, models.ClubApproved,
	))
}

// SetClubStatus reports sql.ErrNoRows when the club does not belong to the
// college.
func (r PostgresRepository) SetClubStatus(
	ctx context.Context,
	clubID, collegeID int,
	status string,
) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE clubs SET status=$1, updated_at=now() WHERE id=$2 AND college_id=$3",
		status, clubID, collegeID,
	)
	return affectedOne(res, err)
}

// UpdateClubProfile sets about and contact info; nil values keep the stored
// ones.
func (r PostgresRepository) UpdateClubProfile(
	ctx context.Context,
	clubID int,
	about *string,
	contactInfo json.RawMessage,
) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE clubs SET
			about = COALESCE($1, about),
			contact_info = COALESCE($2::jsonb, contact_info),
			updated_at = now()
		 WHERE id=$3`,
		about, nullableJSON(contactInfo), clubID,
	)
	return affectedOne(res, err)
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r PostgresRepository) ListAnnouncements(
	ctx context.Context,
	clubID, limit int,
) ([]models.Announcement, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, club_id, title, content, is_published, created_at
		 FROM announcements WHERE club_id=$1 AND is_published
		 ORDER BY created_at DESC LIMIT $2`,
		clubID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.ClubID, &a.Title, &a.Content, &a.Published, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r PostgresRepository) CreateAnnouncement(
	ctx context.Context,
	a models.Announcement,
) (models.Announcement, error) {
	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO announcements (club_id, title, content, is_published)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		a.ClubID, a.Title, a.Content, a.Published,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

func (r PostgresRepository) ListRegistrations(
	ctx context.Context,
	clubID, limit int,
) ([]models.Registration, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, club_id, title, description, registration_link, start_date, end_date, status, created_at
		 FROM registrations WHERE club_id=$1
		 ORDER BY created_at DESC LIMIT $2`,
		clubID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Registration{}
	for rows.Next() {
		var (
			reg        models.Registration
			start, end sql.NullTime
		)
		if err := rows.Scan(
			&reg.ID,
			&reg.ClubID,
			&reg.Title,
			&reg.Description,
			&reg.RegistrationLink,
			&start,
			&end,
			&reg.Status,
			&reg.CreatedAt,
		); err != nil {
			return nil, err
		}
		if start.Valid {
			reg.StartDate = &start.Time
		}
		if end.Valid {
			reg.EndDate = &end.Time
		}
		list = append(list, reg)
	}
	return list, rows.Err()
}

func (r PostgresRepository) CreateRegistration(
	ctx context.Context,
	reg models.Registration,
) (models.Registration, error) {
	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO registrations (club_id, title, description, registration_link, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		reg.ClubID, reg.Title, reg.Description, reg.RegistrationLink, reg.StartDate, reg.EndDate, reg.Status,
	).Scan(&reg.ID, &reg.CreatedAt)
	if err != nil {
		return models.Registration{}, err
	}
	return reg, nil
}

// IncrementViews bumps the view counter of a club or college.
func (r PostgresRepository) IncrementViews(
	ctx context.Context,
	entityType string,
	id int,
) error {
	var table string
	switch entityType {
	case "club":
		table = "clubs"
	case "college":
		table = "colleges"
	default:
		return fmt.Errorf("views are not tracked for %q", entityType)
	}
	res, err := r.db.ExecContext(ctx, "UPDATE "+table+" SET views = views + 1 WHERE id=$1", id)
	return affectedOne(res, err)
}

func (r PostgresRepository) TrackEvent(
	ctx context.Context,
	entityType string,
	entityID int,
	eventType string,
	metadata map[string]interface{},
) error {
	var meta []byte
	if len(metadata) > 0 {
		var err error
		if meta, err = json.Marshal(metadata); err != nil {
			return err
		}
	}
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO analytics_events (entity_type, entity_id, event_type, metadata) VALUES ($1, $2, $3, $4)",
		entityType, entityID, eventType, nullableJSON(meta),
	)
	return err
}

func (r PostgresRepository) ClubStats(
	ctx context.Context,
	clubID int,
	since time.Time,
) (models.ClubStats, error) {
	var st models.ClubStats
	err := r.db.QueryRowContext(
		ctx,
		`SELECT c.views,
			(SELECT COUNT(*) FROM analytics_events e
			  WHERE e.entity_type='club' AND e.entity_id=c.id AND e.event_type='view' AND e.created_at >= $2),
			(SELECT COUNT(*) FROM announcements a WHERE a.club_id=c.id),
			(SELECT COUNT(*) FROM registrations g WHERE g.club_id=c.id),
			(SELECT COUNT(*) FROM registrations g WHERE g.club_id=c.id AND g.status='open')
		 FROM clubs c WHERE c.id=$1`,
		clubID, since,
	).Scan(&st.Views, &st.RecentViews, &st.Announcements, &st.Registrations, &st.OpenRegistrations)
	return st, err
}

func (r PostgresRepository) CollegeStats(
	ctx context.Context,
	collegeID int,
) (models.CollegeStats, error) {
	var st models.CollegeStats
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status='pending'),
			COUNT(*) FILTER (WHERE status='approved'),
			COUNT(*) FILTER (WHERE status='rejected'),
			COALESCE(SUM(views), 0)
		 FROM clubs WHERE college_id=$1`,
		collegeID,
	).Scan(&st.TotalClubs, &st.PendingClubs, &st.ApprovedClubs, &st.RejectedClubs, &st.TotalViews)
	return st, err
}
