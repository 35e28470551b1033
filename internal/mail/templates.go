package mail

import "fmt"

func patientWelcomeBody(firstName, lastName, token string) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2>Welcome to JHC Clinics!</h2>
      <p>Hello %s %s,</p>
      <p>Thanks for joining the JHC family, we are pleased to have you on board!!!.
      in order to complete your sign up process, you'll be required to verify your
      account using the verification token sent below:</p>
      <ul>
        <li><strong>Verification Token:</strong> %s</li>
      </ul>
      <p>Thanks!</p>
      <p>Best regards,<br>JHC Hospitals</p>
    </div>`, firstName, lastName, token)
}

func doctorWelcomeBody(email, firstName, lastName, password string) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2>Welcome to JHC Clinics App!</h2>
      <p>Hello %s %s,</p>
      <p>Welcome to JHC Clinics App! Below are your login details:</p>
      <ul>
        <li><strong>Email:</strong> %s</li>
        <li><strong>Password:</strong> %s</li>
      </ul>
      <p>You can now log in to the JHC Clinics app using the above credentials. For security reasons, you'll be prompted to change your password after logging in.</p>
      <p>Thanks!</p>
      <p>Best regards,<br>JHC Clinics Dev Team</p>
    </div>`, firstName, lastName, email, password)
}

func passwordResetBody(firstName, lastName, token string) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h2>Password Reset Request</h2>
        <p>Hello %s %s,</p>
        <p>We received a request to reset your password for your JHC Clinics account.
        If you did not make this request, you can ignore this email. Otherwise, you can reset your password using the token provided below:</p>
        <ul>
          <li><strong>Password Reset Token:</strong> %s</li>
        </ul>
        <p>This token will expire in 24 hours.</p>
        <p>If you have any questions or need further assistance, please contact our support team.</p>
        <p>Thanks!</p>
        <p>Best regards,<br>JHC Hospitals</p>
      </div>`, firstName, lastName, token)
}

func passwordResetSuccessBody(firstName, lastName string) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h2>Password Reset Successful</h2>
        <p>Hello %s %s,</p>
        <p>We wanted to let you know that your password has been successfully reset for your JHC Clinics account.</p>
        <p>If you did not make this request, please contact our support team immediately to secure your account.</p>
        <p>If you have any questions or need further assistance, please don't hesitate to reach out to our support team.</p>
        <p>Thanks!</p>
        <p>Best regards,<br>JHC Hospitals</p>
      </div>`, firstName, lastName)
}
