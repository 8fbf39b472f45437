package service_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"hackhub/models"
	"hackhub/service"
	"hackhub/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Robotics Club":         "robotics-club",
		"  AI & ML Society  ":   "ai-ml-society",
		"Dance__Crew -- 2024":   "dance-crew-2024",
		"---Coding!!!---":       "coding",
		"Photography_and_Films": "photography-and-films",
	}
	for in, want := range tests {
		require.Equal(t, want, service.Slugify(in), in)
	}
}

func validClubRegistration() service.ClubRegistration {
	return service.ClubRegistration{
		Name:          "Robotics Club",
		College:       "clg-123456",
		Email:         "robotics@college.edu",
		CategoryID:    2,
		AdminName:     "Lead",
		AdminEmail:    "Lead@College.edu",
		AdminPassword: "password1",
		Description:   strings.Repeat("We build robots. ", 4),
	}
}

func TestService_RegisterClub(t *testing.T) {
	type fields struct {
		prepareRepository func(*mocks.MockRepository)
	}
	tests := []struct {
		name    string
		mutate  func(*service.ClubRegistration)
		fields  fields
		wantErr error
		wantVal bool
	}{
		{
			name: "Registered as pending",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ClubAdminEmailExists(gomock.Any(), "lead@college.edu").Return(false, nil)
					mr.EXPECT().FindCollegeByCode(gomock.Any(), "CLG-123456").Return(models.College{ID: 5}, nil)
					mr.EXPECT().ClubSlugExists(gomock.Any(), 5, "robotics-club").Return(false, nil)
					mr.EXPECT().CreateClub(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, c models.Club, a models.ClubAdmin) (int, error) {
							require.Equal(t, models.ClubPending, c.Status)
							require.Equal(t, 5, c.CollegeID)
							require.Equal(t, "lead@college.edu", a.Email)
							require.NotEqual(t, "password1", a.PasswordHash)
							return 77, nil
						})
				},
			},
		},
		{
			name:   "College by name",
			mutate: func(r *service.ClubRegistration) { r.College = "Institute of Tech" },
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ClubAdminEmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
					mr.EXPECT().FindCollegeByName(gomock.Any(), "Institute of Tech").Return(models.College{}, sql.ErrNoRows)
				},
			},
			wantErr: service.ErrCollegeNotFound,
		},
		{
			name: "Admin email taken",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ClubAdminEmailExists(gomock.Any(), gomock.Any()).Return(true, nil)
				},
			},
			wantErr: service.ErrEmailTaken,
		},
		{
			name: "Slug taken",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ClubAdminEmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
					mr.EXPECT().FindCollegeByCode(gomock.Any(), gomock.Any()).Return(models.College{ID: 5}, nil)
					mr.EXPECT().ClubSlugExists(gomock.Any(), 5, "robotics-club").Return(true, nil)
				},
			},
			wantErr: service.ErrClubNameTaken,
		},
		{
			name:    "Short description",
			mutate:  func(r *service.ClubRegistration) { r.Description = "too short" },
			fields:  fields{prepareRepository: func(*mocks.MockRepository) {}},
			wantVal: true,
		},
		{
			name:    "Missing category",
			mutate:  func(r *service.ClubRegistration) { r.CategoryID = 0 },
			fields:  fields{prepareRepository: func(*mocks.MockRepository) {}},
			wantVal: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.fields.prepareRepository)
			in := validClubRegistration()
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			id, err := svc.RegisterClub(context.Background(), in)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantVal:
				require.True(t, service.IsValidation(err), "got %v", err)
			default:
				require.NoError(t, err)
				require.Equal(t, 77, id)
			}
		})
	}
}

func TestService_RegisterCollege(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		gomock.InOrder(
			mr.EXPECT().CollegeCodeExists(gomock.Any(), gomock.Any()).Return(true, nil),
			mr.EXPECT().CollegeCodeExists(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		mr.EXPECT().CreateCollege(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.College, a models.CollegeAdmin) (models.College, error) {
				require.Regexp(t, `^CLG-\d{6}$`, c.Code)
				require.Equal(t, "active", c.Status)
				require.Equal(t, "admin@tech.edu", a.Email)
				c.ID = 3
				return c, nil
			})
	})

	c, err := svc.RegisterCollege(context.Background(), service.CollegeRegistration{
		Name:          "Institute of Tech",
		Location:      "North Campus",
		OfficialEmail: "office@tech.edu",
		AdminEmail:    "admin@tech.edu",
		AdminPassword: "password1",
	})
	require.NoError(t, err)
	require.Equal(t, 3, c.ID)
}

func TestService_RegisterCollegeGivesUpOnCodes(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().CollegeCodeExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(10)
	})

	_, err := svc.RegisterCollege(context.Background(), service.CollegeRegistration{
		Name:          "Institute of Tech",
		Location:      "North Campus",
		OfficialEmail: "office@tech.edu",
		AdminEmail:    "admin@tech.edu",
		AdminPassword: "password1",
	})
	require.ErrorIs(t, err, service.ErrCollegeCode)
}

func TestService_GetClub(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().GetApprovedClub(gomock.Any(), 8).Return(models.Club{ID: 8, Name: "Chess"}, nil)
		mr.EXPECT().ListAnnouncements(gomock.Any(), 8, 10).Return([]models.Announcement{{ID: 1}}, nil)
		mr.EXPECT().ListRegistrations(gomock.Any(), 8, 10).Return(nil, nil)
		mr.EXPECT().IncrementViews(gomock.Any(), "club", 8).Return(sql.ErrConnDone)
		mr.EXPECT().TrackEvent(gomock.Any(), "club", 8, "view", gomock.Nil()).Return(nil)
	})

	d, err := svc.GetClub(context.Background(), 8)
	require.NoError(t, err)
	require.Equal(t, "Chess", d.Name)
	require.Len(t, d.Announcements, 1)
	require.NotNil(t, d.Registrations)
}

func TestService_GetClubNotApproved(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().GetApprovedClub(gomock.Any(), 8).Return(models.Club{}, sql.ErrNoRows)
	})
	_, err := svc.GetClub(context.Background(), 8)
	require.ErrorIs(t, err, service.ErrClubNotFound)
}

func TestService_ReviewClub(t *testing.T) {
	tests := []struct {
		name       string
		action     string
		prepare    func(*mocks.MockRepository)
		wantStatus string
		wantErr    error
		wantVal    bool
	}{
		{
			name:   "Approve",
			action: "approve",
			prepare: func(mr *mocks.MockRepository) {
				mr.EXPECT().SetClubStatus(gomock.Any(), 8, 3, models.ClubApproved).Return(nil)
				mr.EXPECT().TrackEvent(gomock.Any(), "club", 8, "status_approved", gomock.Any()).Return(nil)
			},
			wantStatus: models.ClubApproved,
		},
		{
			name:   "Club of another college",
			action: "reject",
			prepare: func(mr *mocks.MockRepository) {
				mr.EXPECT().SetClubStatus(gomock.Any(), 8, 3, models.ClubRejected).Return(sql.ErrNoRows)
			},
			wantErr: service.ErrClubNotFound,
		},
		{
			name:    "Unknown action",
			action:  "ban",
			prepare: func(*mocks.MockRepository) {},
			wantVal: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.prepare)
			status, err := svc.ReviewClub(context.Background(), 3, 8, tt.action)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantVal:
				require.True(t, service.IsValidation(err))
			default:
				require.NoError(t, err)
				require.Equal(t, tt.wantStatus, status)
			}
		})
	}
}

func TestService_CreateRegistration(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().CreateRegistration(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r models.Registration) (models.Registration, error) {
				require.Equal(t, "open", r.Status)
				require.Equal(t, 8, r.ClubID)
				return r, nil
			})
	})

	_, err := svc.CreateRegistration(context.Background(), 8, service.RegistrationInput{
		Title:            "Spring recruitment",
		RegistrationLink: "https://forms.example.com/x",
	})
	require.NoError(t, err)

	_, err = svc.CreateRegistration(context.Background(), 8, service.RegistrationInput{Title: "Hi"})
	require.True(t, service.IsValidation(err))

	_, err = svc.CreateRegistration(context.Background(), 8, service.RegistrationInput{Title: "Spring recruitment", Status: "paused"})
	require.True(t, service.IsValidation(err))
}

func TestService_CreateAnnouncement(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().CreateAnnouncement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a models.Announcement) (models.Announcement, error) {
				require.True(t, a.Published)
				return a, nil
			})
	})

	_, err := svc.CreateAnnouncement(context.Background(), 8, service.AnnouncementInput{
		Title:   "Hackathon",
		Content: "Join us this Saturday for a 24h build.",
	})
	require.NoError(t, err)

	_, err = svc.CreateAnnouncement(context.Background(), 8, service.AnnouncementInput{Title: "Hackathon", Content: "short"})
	require.True(t, service.IsValidation(err))
}

func TestService_UpdateClub(t *testing.T) {
	about := "We meet on Fridays."
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().UpdateClubProfile(gomock.Any(), 8, &about, gomock.Any()).Return(nil)
	})

	require.NoError(t, svc.UpdateClub(context.Background(), 8, service.ClubUpdate{
		About:       &about,
		ContactInfo: &service.ContactInfo{SocialLinks: []service.SocialLink{{Platform: "ig", URL: "https://instagram.com/club"}}},
	}))
	require.True(t, service.IsValidation(svc.UpdateClub(context.Background(), 8, service.ClubUpdate{})))

	long := strings.Repeat("a", 5001)
	require.True(t, service.IsValidation(svc.UpdateClub(context.Background(), 8, service.ClubUpdate{About: &long})))
}
