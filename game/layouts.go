package game

const defaultLayout = `
%%%%%%%%%%%%%%%%%%%%
%3 ..   %     o . 2%
%  %%%  .  .  %%% %%
%. %  .    %  .   .%
%  % %% %  % %% %  %
%.   .  %    .  % .%
%% %%%  .  .  %%%  %
%1 . o     %   .. 4%
%%%%%%%%%%%%%%%%%%%%
`

// DefaultLayout is a small point-symmetric four-agent board.
func DefaultLayout() *Layout {
	return MustParseLayout(defaultLayout)
}
