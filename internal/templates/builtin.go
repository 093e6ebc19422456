package templates

// ProfileCardName is the template the editor inserts by default.
const ProfileCardName = "profile-card"

const profileCardMarkup = `
<div class="rounded-2xl bg-gray-800 px-8 py-10 w-full h-full flex flex-col items-center">
  <img class="mx-auto h-48 w-48 rounded-full" src="/api/placeholder/200/200" alt="">
  <h3 class="mt-6 text-base font-semibold tracking-tight text-white">Nome do Usuário</h3>
  <p class="text-sm text-gray-400">Cargo</p>
  <div class="mt-6 flex justify-center gap-x-6">
    <a href="#" class="text-gray-400 hover:text-gray-300">
      <svg class="h-5 w-5" fill="currentColor" viewBox="0 0 20 20">
        <path d="M11.4678 8.77491L17.2961 2H15.915L10.8543 7.88256L6.81232 2H2.15039L8.26263 10.8955L2.15039 18H3.53159L8.87581 11.7878L13.1444 18H17.8063L11.4675 8.77491H11.4678Z" />
      </svg>
    </a>
  </div>
</div>
`

func builtinTemplates() []Template {
	return []Template{
		{
			Name:   ProfileCardName,
			Label:  "Cartão de Perfil",
			Width:  300,
			Height: 400,
			Markup: profileCardMarkup,
			Source: SourceBuiltin,
		},
	}
}
