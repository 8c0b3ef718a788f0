package forms

import (
	"net/url"
	"strconv"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/service"
)

// JobForm — форма добавления и редактирования работы.
type JobForm struct {
	JobTitle      string `form:"job_title" validate:"required"`
	TeamLeader    string `form:"team_leader" validate:"required,number,fits64,nonzero"`
	WorkSize      string `form:"work_size" validate:"required,number,fits32,nonzero"`
	Collaborators string `form:"collaborators" validate:"required"`
	IsFinished    bool   `form:"is_finished"`
}

func Job(v url.Values) (JobForm, error) {
	f := JobForm{
		JobTitle:      text(v, "job_title"),
		TeamLeader:    text(v, "team_leader"),
		WorkSize:      text(v, "work_size"),
		Collaborators: text(v, "collaborators"),
		IsFinished:    checkbox(v, "is_finished"),
	}
	return f, check(f)
}

// JobFormFrom заполняет форму редактирования текущими значениями работы.
func JobFormFrom(j *models.Job) JobForm {
	return JobForm{
		JobTitle:      j.Title,
		TeamLeader:    strconv.FormatInt(j.TeamLeader, 10),
		WorkSize:      strconv.Itoa(j.WorkSize),
		Collaborators: j.Collaborators,
		IsFinished:    j.IsFinished,
	}
}

func (f JobForm) Input() service.JobInput {
	return service.JobInput{
		TeamLeader:    mustInt(f.TeamLeader),
		Title:         f.JobTitle,
		WorkSize:      int(mustInt(f.WorkSize)),
		Collaborators: f.Collaborators,
		IsFinished:    f.IsFinished,
	}
}

// DepartmentForm — форма добавления и редактирования департамента.
type DepartmentForm struct {
	Title   string `form:"title" validate:"required"`
	Chief   string `form:"chief" validate:"required,number,fits64,nonzero"`
	Members string `form:"members" validate:"required"`
	Email   string `form:"email" validate:"required"`
}

func Department(v url.Values) (DepartmentForm, error) {
	f := DepartmentForm{
		Title:   text(v, "title"),
		Chief:   text(v, "chief"),
		Members: text(v, "members"),
		Email:   text(v, "email"),
	}
	return f, check(f)
}

func DepartmentFormFrom(d *models.Department) DepartmentForm {
	return DepartmentForm{
		Title:   d.Title,
		Chief:   strconv.FormatInt(d.Chief, 10),
		Members: d.Members,
		Email:   d.Email,
	}
}

func (f DepartmentForm) Input() service.DepartmentInput {
	return service.DepartmentInput{
		Title:   f.Title,
		Chief:   mustInt(f.Chief),
		Members: f.Members,
		Email:   f.Email,
	}
}
