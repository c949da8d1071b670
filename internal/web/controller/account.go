package controller

import (
	"net/http"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

// LoginPage handles GET /login
func (ct *Controller) LoginPage(w http.ResponseWriter, r *http.Request) {
	if ct.sessions.Current(r).LoggedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	ct.render(w, r, "login.html", nil)
}

// LoginSubmit handles POST /login
func (ct *Controller) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	req := &dto.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	resp, err := ct.api.Auth.Login(r.Context(), req)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/login")
		return
	}

	if err := ct.sessions.SignIn(w, r, resp); err != nil {
		ct.flashAndRedirect(w, r, "Could not start a session. Please try again.", "/login")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPage handles GET /register
func (ct *Controller) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if ct.sessions.Current(r).LoggedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	ct.render(w, r, "register.html", nil)
}

// RegisterSubmit handles POST /register. The form chooses the Student or
// Employer role; the matching profile row is created with the account.
func (ct *Controller) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	role := r.FormValue("role")
	if role != model.RoleStudent && role != model.RoleEmployer {
		ct.flashAndRedirect(w, r, "Please choose Student or Employer.", "/register")
		return
	}
	if r.FormValue("password") != r.FormValue("confirmPassword") {
		ct.flashAndRedirect(w, r, "Passwords do not match.", "/register")
		return
	}

	req := &dto.RegisterRequest{
		Email:       r.FormValue("email"),
		Password:    r.FormValue("password"),
		Role:        role,
		FullName:    r.FormValue("fullName"),
		CompanyName: r.FormValue("companyName"),
	}

	resp, err := ct.api.Auth.Register(r.Context(), req)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/register")
		return
	}

	if err := ct.sessions.SignIn(w, r, resp); err != nil {
		ct.flashAndRedirect(w, r, "Account created. Please sign in.", "/login")
		return
	}
	ct.flashAndRedirect(w, r, "Welcome! Your account is ready.", "/")
}

// Logout handles GET /logout
func (ct *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	_ = ct.sessions.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AccessDenied handles GET /access-denied
func (ct *Controller) AccessDenied(w http.ResponseWriter, r *http.Request) {
	ct.render(w, r, "access_denied.html", nil)
}

// ChangePasswordPage handles GET /change-password
func (ct *Controller) ChangePasswordPage(w http.ResponseWriter, r *http.Request) {
	ct.render(w, r, "change_password.html", nil)
}

// ChangePasswordSubmit handles POST /change-password
func (ct *Controller) ChangePasswordSubmit(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	if r.FormValue("newPassword") != r.FormValue("confirmPassword") {
		ct.flashAndRedirect(w, r, "New passwords do not match.", "/change-password")
		return
	}

	req := &dto.ChangePasswordRequest{
		CurrentPassword: r.FormValue("currentPassword"),
		NewPassword:     r.FormValue("newPassword"),
	}
	if err := ct.api.Auth.ChangePassword(r.Context(), auth.Token, auth.UserID, req); err != nil {
		ct.failAndRedirect(w, r, err, "/change-password")
		return
	}
	ct.flashAndRedirect(w, r, "Password changed.", "/profile")
}

// Profile handles GET /profile, showing the student or employer profile.
// Admins have no profile row, so they get the bare account record.
func (ct *Controller) Profile(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	switch auth.Role {
	case model.RoleStudent:
		student, err := ct.api.Students.Get(r.Context(), auth.Token, auth.UserID)
		if err != nil {
			ct.failAndRedirect(w, r, err, "/")
			return
		}
		ct.render(w, r, "profile_student.html", student)
	case model.RoleEmployer:
		employer, err := ct.api.Employers.Get(r.Context(), auth.Token, auth.UserID)
		if err != nil {
			ct.failAndRedirect(w, r, err, "/")
			return
		}
		ct.render(w, r, "profile_employer.html", employer)
	default:
		user, err := ct.api.Auth.GetUser(r.Context(), auth.Token, auth.UserID)
		if err != nil {
			ct.failAndRedirect(w, r, err, "/")
			return
		}
		ct.render(w, r, "profile_user.html", user)
	}
}

// EditStudentProfileSubmit handles POST /profile/student
func (ct *Controller) EditStudentProfileSubmit(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	req := &dto.UpdateStudentRequest{
		FullName:    r.FormValue("fullName"),
		PhoneNumber: formString(r.FormValue("phoneNumber")),
		Major:       formString(r.FormValue("major")),
		YearOfStudy: formInt(r.FormValue("yearOfStudy")),
	}
	if _, err := ct.api.Students.Update(r.Context(), auth.Token, auth.UserID, req); err != nil {
		ct.failAndRedirect(w, r, err, "/profile")
		return
	}
	ct.flashAndRedirect(w, r, "Profile updated.", "/profile")
}

// UploadCVSubmit handles POST /profile/upload-cv, relaying the file to the API.
func (ct *Controller) UploadCVSubmit(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	file, header, err := r.FormFile("file")
	if err != nil {
		ct.flashAndRedirect(w, r, "Please choose a file to upload.", "/profile")
		return
	}
	defer file.Close()

	if err := ct.api.Students.UploadCV(r.Context(), auth.Token, auth.UserID, header.Filename, file); err != nil {
		ct.failAndRedirect(w, r, err, "/profile")
		return
	}
	ct.flashAndRedirect(w, r, "CV uploaded.", "/profile")
}

// EditEmployerProfileSubmit handles POST /profile/employer
func (ct *Controller) EditEmployerProfileSubmit(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	current, err := ct.api.Employers.Get(r.Context(), auth.Token, auth.UserID)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/profile")
		return
	}

	req := &dto.UpdateEmployerRequest{
		CompanyName: r.FormValue("companyName"),
		ContactName: formString(r.FormValue("contactName")),
		PhoneNumber: formString(r.FormValue("phoneNumber")),
		Address:     formString(r.FormValue("address")),
		TaxCode:     formString(r.FormValue("taxCode")),
		// Verification is an admin decision; carry the current flag through.
		IsVerified: current.IsVerified,
	}
	if _, err := ct.api.Employers.Update(r.Context(), auth.Token, auth.UserID, req); err != nil {
		ct.failAndRedirect(w, r, err, "/profile")
		return
	}
	ct.flashAndRedirect(w, r, "Profile updated.", "/profile")
}
