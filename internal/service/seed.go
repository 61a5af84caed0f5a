package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/repository"
)

// SeedService loads the sample timeline and projects.
type SeedService struct {
	experiences repository.ExperienceRepository
	projects    repository.ProjectRepository
}

func NewSeedService(experiences repository.ExperienceRepository, projects repository.ProjectRepository) *SeedService {
	return &SeedService{experiences: experiences, projects: projects}
}

// Seed inserts the sample data. With reset, existing experiences and
// projects are removed first.
func (s *SeedService) Seed(ctx context.Context, reset bool) (experiences, projects int, err error) {
	if reset {
		err = s.experiences.DeleteAll(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to clear experiences: %w", err)
		}
		err = s.projects.DeleteAll(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to clear projects: %w", err)
		}
		slog.Info("existing experiences and projects cleared")
	}

	for _, e := range seedExperiences() {
		err = s.experiences.Create(ctx, e)
		if err != nil {
			return experiences, projects, fmt.Errorf("failed to seed experience %q: %w", e.Title, err)
		}
		experiences++
	}

	for _, p := range seedProjects() {
		err = s.projects.Create(ctx, p)
		if err != nil {
			return experiences, projects, fmt.Errorf("failed to seed project %q: %w", p.Title, err)
		}
		projects++
	}

	return experiences, projects, nil
}

func seedExperiences() []*model.Experience {
	return []*model.Experience{
		{
			Title:       "Agent de Recensement Biométrique",
			Company:     "Ministère de l'Administration Guinée/Tunisie",
			Year:        "2025",
			Description: "Ministère de l'Administration Guinée/Tunisie",
			Responsibilities: model.StringList{
				"Collecte et traitement de données biométriques sensibles",
				"Formation technique des équipes locales aux dispositifs",
				"Élaboration de rapports de synthèse pour les autorités",
				"Coordination des équipes de terrain dans les zones rurales",
			},
			Tags:      model.StringList{"Collecte de données", "Formation", "Reporting"},
			Order:     1,
			IsVisible: true,
		},
		{
			Title:       "Chef de Projet Entrepreneurial",
			Company:     "Innovation sociale ODD",
			Year:        "2025",
			Description: "Innovation sociale ODD",
			Responsibilities: model.StringList{
				"Direction d'une équipe pluridisciplinaire de 6 personnes",
				"Conception et implémentation d'un business model durable",
				"Levée de fonds (50 000€) auprès d'investisseurs impact",
				"Développement de partenariats stratégiques locaux et internationaux",
			},
			Tags:      model.StringList{"ODD", "Innovation", "Leadership"},
			Order:     2,
			IsVisible: true,
		},
		{
			Title:       "Stagiaire PMO",
			Company:     "Topaza International",
			Year:        "2024",
			Description: "Topaza International",
			Responsibilities: model.StringList{
				"Prospection et qualification de leads dans 3 marchés africains",
				"Mise en place et gestion du CRM pour le suivi client",
				"Contribution à l'élaboration de la stratégie marketing digitale",
				"Analyse concurrentielle et identification d'opportunités",
			},
			Tags:      model.StringList{"Prospection", "CRM", "Stratégie"},
			Order:     3,
			IsVisible: true,
		},
		{
			Title:       "Stagiaire Développeur",
			Company:     "SchoolUp Grader",
			Year:        "2022",
			Description: "SchoolUp Grader",
			Responsibilities: model.StringList{
				"Développement d'un mini-CRM pour la gestion des inscriptions",
				"Conception d'une interface utilisateur intuitive avec React.js",
				"Implémentation d'un backend sécurisé avec Node.js et MongoDB",
				"Déploiement et maintenance de l'application en production",
			},
			Tags:      model.StringList{"MERN", "UI/UX", "CRM"},
			Order:     4,
			IsVisible: true,
		},
	}
}

func seedProjects() []*model.Project {
	return []*model.Project{
		{
			Title:       "Projet Agricole Pôle Étudiant",
			Description: "Initiative étudiante visant à créer une agriculture urbaine durable sur le campus universitaire, combinant innovation technique et sensibilisation écologique.",
			Tech:        model.StringList{"Gestion de projet", "Développement durable", "Innovation", "Entrepreneuriat social"},
			CoverURL:    "https://cdn.pixabay.com/photo/2016/09/16/19/13/greenhouse-1674891_960_720.jpg",
			ProjectURL:  "#",
		},
		{
			Title:       "CRM SchoolUp Grader",
			Description: "Système de gestion des inscriptions et suivi des étudiants développé pour SchoolUp, une startup dans le domaine de l'éducation.",
			Tech:        model.StringList{"React", "Node.js", "MongoDB", "Express", "UI/UX"},
			CoverURL:    "https://cdn.pixabay.com/photo/2015/07/17/22/42/startup-849804_960_720.jpg",
			ProjectURL:  "#",
		},
		{
			Title:       "Dashboard Analytics ODD",
			Description: "Tableau de bord interactif pour le suivi des indicateurs de performance liés aux Objectifs de Développement Durable (ODD) des Nations Unies.",
			Tech:        model.StringList{"Power BI", "Python", "Data Analysis", "SQL", "ODD"},
			CoverURL:    "https://cdn.pixabay.com/photo/2018/06/08/00/48/developer-3461405_960_720.png",
			ProjectURL:  "#",
		},
	}
}
